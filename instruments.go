package dynarray

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Instruments exports the state of one Array to Prometheus. Values are pushed
// by the array as it mutates, so scraping never touches the array itself.
// A nil *Instruments is valid and records nothing.
type Instruments struct {
	Len       prometheus.Gauge
	Capacity  prometheus.Gauge
	Reserved  prometheus.Gauge
	Pushes    prometheus.Counter
	Pops      prometheus.Counter
	Growths   prometheus.Counter
	Drops     prometheus.Counter
	collector []prometheus.Collector
}

// NewInstruments creates the instruments for an array labelled name and
// registers them with reg. A nil reg leaves them unregistered.
func NewInstruments(reg prometheus.Registerer, namespace, name string) (*Instruments, error) {
	labels := prometheus.Labels{"array": name}
	gauge := func(metric, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "dynarray",
			Name:        metric,
			Help:        help,
			ConstLabels: labels,
		})
	}
	counter := func(metric, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "dynarray",
			Name:        metric,
			Help:        help,
			ConstLabels: labels,
		})
	}

	in := &Instruments{
		Len:      gauge("len", "Number of live elements."),
		Capacity: gauge("capacity", "Number of reserved slots."),
		Reserved: gauge("reserved_bytes", "Bytes reserved for slots."),
		Pushes:   counter("pushes_total", "Elements appended."),
		Pops:     counter("pops_total", "Elements removed from the end."),
		Growths:  counter("growths_total", "Region reallocations."),
		Drops:    counter("drops_total", "Element cleanups run by the array."),
	}
	in.collector = []prometheus.Collector{
		in.Len, in.Capacity, in.Reserved,
		in.Pushes, in.Pops, in.Growths, in.Drops,
	}

	if reg != nil {
		for i, c := range in.collector {
			if err := reg.Register(c); err != nil {
				for _, done := range in.collector[:i] {
					reg.Unregister(done)
				}
				return nil, err
			}
		}
	}
	return in, nil
}

// MustNewInstruments is like NewInstruments but panics on registration errors.
func MustNewInstruments(reg prometheus.Registerer, namespace, name string) *Instruments {
	in, err := NewInstruments(reg, namespace, name)
	if err != nil {
		panic(err)
	}
	return in
}

// Unregister removes the instruments from reg.
func (in *Instruments) Unregister(reg prometheus.Registerer) {
	if in == nil || reg == nil {
		return
	}
	for _, c := range in.collector {
		reg.Unregister(c)
	}
}

func (in *Instruments) push(n int) {
	if in == nil {
		return
	}
	in.Pushes.Inc()
	in.Len.Set(float64(n))
}

func (in *Instruments) pop(n int) {
	if in == nil {
		return
	}
	in.Pops.Inc()
	in.Len.Set(float64(n))
}

func (in *Instruments) grow(capacity, bytes int) {
	if in == nil {
		return
	}
	in.Growths.Inc()
	in.resize(capacity, bytes)
}

func (in *Instruments) resize(capacity, bytes int) {
	if in == nil {
		return
	}
	in.Capacity.Set(float64(capacity))
	in.Reserved.Set(float64(bytes))
}

func (in *Instruments) drop(n int) {
	if in == nil || n == 0 {
		return
	}
	in.Drops.Add(float64(n))
}

func (in *Instruments) release() {
	if in == nil {
		return
	}
	in.Len.Set(0)
	in.resize(0, 0)
}
