// Package demo drives a dynarray through a fixed scenario: fill it, overwrite
// one element, then drain it from the end.
package demo

import (
	"slices"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/pavanmanishd/dynarray"
)

// Report is what one run observed.
type Report struct {
	Pushed   []int
	AfterSet []int
	Popped   []int
	Peak     dynarray.ArrayMetrics // just before draining
	Final    dynarray.ArrayMetrics // after draining, before release
	Families int                   // metric families gathered after the run
}

// Run executes the scenario described by cfg. The array's instruments are
// registered on reg, which may be nil.
func Run(cfg Config, logger *zap.Logger, reg *prometheus.Registry) (Report, error) {
	var rep Report
	if err := cfg.Validate(); err != nil {
		return rep, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var registerer prometheus.Registerer
	if reg != nil {
		registerer = reg
	}
	in, err := dynarray.NewInstruments(registerer, cfg.Namespace, "demo")
	if err != nil {
		return rep, err
	}
	defer in.Unregister(registerer)

	arr := dynarray.WithCapacity[int](cfg.InitialCapacity,
		dynarray.WithLogger(logger.Named("array")),
		dynarray.WithInstruments(in),
	)
	defer arr.Release()

	for i := 0; i < cfg.Count; i++ {
		arr.Push(i)
	}
	rep.Pushed = slices.Collect(arr.Values())
	logger.Info("filled",
		zap.Int("len", arr.Len()),
		zap.Int("cap", arr.Cap()),
		zap.Ints("elements", rep.Pushed),
	)

	if cfg.Count > 0 {
		arr.Set(cfg.SetIndex, cfg.SetValue)
		logger.Info("modified element",
			zap.Int("index", cfg.SetIndex),
			zap.Int("value", cfg.SetValue),
		)
	}
	rep.AfterSet = slices.Collect(arr.Values())
	rep.Peak = arr.Metrics()

	for v, ok := arr.Pop(); ok; v, ok = arr.Pop() {
		rep.Popped = append(rep.Popped, v)
		logger.Debug("popped", zap.Int("value", v))
	}
	rep.Final = arr.Metrics()

	if reg != nil {
		families, err := reg.Gather()
		if err != nil {
			return rep, err
		}
		rep.Families = len(families)
	}

	logger.Info("drained",
		zap.Ints("popped", rep.Popped),
		zap.Int("cap", rep.Final.Capacity),
		zap.Int("growths", rep.Final.Growths),
	)
	return rep, nil
}
