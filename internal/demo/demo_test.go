package demo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRunDefaultScenario(t *testing.T) {
	reg := prometheus.NewRegistry()
	rep, err := Run(DefaultConfig(), zap.NewNop(), reg)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, rep.Pushed)
	assert.Equal(t, []int{0, 1, 42, 3, 4, 5, 6, 7, 8, 9}, rep.AfterSet)
	assert.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 42, 1, 0}, rep.Popped)

	assert.Equal(t, 10, rep.Peak.Len)
	assert.Equal(t, 16, rep.Peak.Capacity)
	assert.Equal(t, 0, rep.Final.Len)
	assert.Equal(t, 16, rep.Final.Capacity)
	assert.Equal(t, 5, rep.Final.Growths)
	assert.Equal(t, 7, rep.Families)

	// Instruments are unregistered once the run ends
	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Empty(t, families)
}

func TestRunPresized(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitialCapacity = 10

	rep, err := Run(cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, rep.Peak.Capacity)
	assert.Equal(t, 0, rep.Peak.Growths)
	assert.Zero(t, rep.Families)
}

func TestRunEmpty(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 0

	rep, err := Run(cfg, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, rep.Pushed)
	assert.Empty(t, rep.Popped)
	assert.Equal(t, 0, rep.Final.Capacity)
}

func TestRunRepeatedOnSameRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	for i := 0; i < 3; i++ {
		_, err := Run(DefaultConfig(), nil, reg)
		require.NoError(t, err, "run %d", i)
	}
}

func TestRunLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := Run(DefaultConfig(), zap.New(core), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("filled").Len())
	assert.Equal(t, 1, logs.FilterMessage("modified element").Len())
	assert.Equal(t, 10, logs.FilterMessage("popped").Len())
	assert.Equal(t, 10, logs.FilterMessage("push").Len())
	assert.Equal(t, 5, logs.FilterMessage("growing capacity").Len())

	for _, e := range logs.FilterMessage("push").All() {
		assert.Equal(t, "array", e.LoggerName)
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SetIndex = 10
	_, err := Run(cfg, nil, nil)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults pass", func(*Config) {}, ""},
		{"negative count", func(c *Config) { c.Count = -1 }, "count"},
		{"negative capacity", func(c *Config) { c.InitialCapacity = -1 }, "initial_capacity"},
		{"set index past count", func(c *Config) { c.SetIndex = 10 }, "set_index"},
		{"negative set index", func(c *Config) { c.SetIndex = -1 }, "set_index"},
		{"set index ignored when empty", func(c *Config) { c.Count = 0; c.SetIndex = 5 }, ""},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, "log_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "demo.yaml")
		data := []byte("count: 20\ninitial_capacity: 4\nset_index: 7\nlog_level: debug\n")
		require.NoError(t, os.WriteFile(path, data, 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 20, cfg.Count)
		assert.Equal(t, 4, cfg.InitialCapacity)
		assert.Equal(t, 7, cfg.SetIndex)
		assert.Equal(t, 42, cfg.SetValue, "unset keys keep defaults")
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, FormatConsole, cfg.LogFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("count: [1, 2"), 0o600))
		_, err := LoadConfig(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestConfig_NewLogger(t *testing.T) {
	for _, format := range []string{FormatJSON, FormatConsole} {
		t.Run(format, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.LogFormat = format
			cfg.LogLevel = "warn"

			logger, err := cfg.NewLogger()
			require.NoError(t, err)
			assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
			assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
		})
	}

	cfg := DefaultConfig()
	cfg.LogLevel = "nope"
	_, err := cfg.NewLogger()
	assert.Error(t, err)
}
