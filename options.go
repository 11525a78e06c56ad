package dynarray

import "go.uber.org/zap"

// Option configures an Array at construction time.
type Option func(*options)

type options struct {
	logger      *zap.Logger
	instruments *Instruments
	finalizer   bool
}

func defaultOptions() options {
	return options{logger: zap.NewNop()}
}

// WithLogger sets the logger used for push and growth diagnostics.
// Entries are written at debug level. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithInstruments reports length, capacity and operation counts to the given
// Prometheus instruments.
func WithInstruments(in *Instruments) Option {
	return func(o *options) {
		o.instruments = in
	}
}

// WithFinalizer attaches a runtime cleanup that drops the live elements if
// the array becomes unreachable without Release being called. Release
// detaches it, so elements are still dropped exactly once.
func WithFinalizer() Option {
	return func(o *options) {
		o.finalizer = true
	}
}
