// Command dynarray-demo fills a dynarray, overwrites one element and drains
// it, logging each stage.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/pavanmanishd/dynarray/internal/demo"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred logger flushing always
// happens before main exits.
func run() int {
	configPath := flag.String("config", os.Getenv("DYNARRAY_DEMO_CONFIG"), "YAML config file")
	count := flag.Int("count", -1, "number of values to push (overrides config)")
	level := flag.String("log-level", "", "log level (overrides config)")
	flag.Parse()

	cfg := demo.DefaultConfig()
	if *configPath != "" {
		loaded, err := demo.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		cfg = loaded
	}
	if *count >= 0 {
		cfg.Count = *count
	}
	if *level != "" {
		cfg.LogLevel = *level
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	rep, err := demo.Run(cfg, logger, prometheus.NewRegistry())
	if err != nil {
		logger.Error("demo failed", zap.Error(err))
		return 1
	}
	logger.Info("done",
		zap.Int("peak_len", rep.Peak.Len),
		zap.Int("peak_cap", rep.Peak.Capacity),
		zap.Float64("peak_utilization", rep.Peak.Utilization),
		zap.Int("reserved_bytes", rep.Final.Reserved),
		zap.Int("metric_families", rep.Families),
	)
	return 0
}
