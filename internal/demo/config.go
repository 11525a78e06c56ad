package demo

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Log formats
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config drives one demonstration run.
type Config struct {
	Count           int    `yaml:"count"`
	InitialCapacity int    `yaml:"initial_capacity"`
	SetIndex        int    `yaml:"set_index"`
	SetValue        int    `yaml:"set_value"`
	LogLevel        string `yaml:"log_level"`
	LogFormat       string `yaml:"log_format"`
	Namespace       string `yaml:"metrics_namespace"`
}

// DefaultConfig pushes ten values and overwrites index 2 with 42.
func DefaultConfig() Config {
	return Config{
		Count:     10,
		SetIndex:  2,
		SetValue:  42,
		LogLevel:  "info",
		LogFormat: FormatConsole,
		Namespace: "demo",
	}
}

// LoadConfig reads YAML from path over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("demo: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("demo: parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks configuration
func (c *Config) Validate() error {
	if c.Count < 0 {
		return errors.New("demo: count must not be negative")
	}
	if c.InitialCapacity < 0 {
		return errors.New("demo: initial_capacity must not be negative")
	}
	if c.Count > 0 && (c.SetIndex < 0 || c.SetIndex >= c.Count) {
		return fmt.Errorf("demo: set_index %d outside [0, %d)", c.SetIndex, c.Count)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("demo: log_level: %w", err)
	}
	switch c.LogFormat {
	case FormatJSON, FormatConsole:
	default:
		return fmt.Errorf("demo: invalid log_format: %s", c.LogFormat)
	}
	return nil
}

// NewLogger builds the logger described by the config.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("demo: log_level: %w", err)
	}

	zc := zap.NewProductionConfig()
	if c.LogFormat == FormatConsole {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
