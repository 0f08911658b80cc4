package cli

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv("EQUATIX_LAYOUT", "")
	t.Setenv("EQUATIX_SEED", "")

	cfg := DefaultConfig()

	assert.Equal(t, "standard", cfg.Layout)
	assert.Equal(t, OutputText, cfg.Output)
	assert.True(t, cfg.Color)
	assert.False(t, cfg.Seeded)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultConfigFromEnv(t *testing.T) {
	t.Setenv("EQUATIX_LAYOUT", "legacy")
	t.Setenv("EQUATIX_SEED", "42")
	t.Setenv("EQUATIX_OUTPUT", "json")
	t.Setenv("EQUATIX_COLOR", "false")
	t.Setenv("EQUATIX_LOG_LEVEL", "debug")

	cfg := DefaultConfig()

	assert.Equal(t, "legacy", cfg.Layout)
	assert.True(t, cfg.Seeded)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.False(t, cfg.Color)

	fc := cfg.FactoryConfig(nil)
	assert.Equal(t, "legacy", fc.Layout)
	assert.True(t, fc.Seeded)
	assert.Equal(t, int64(42), fc.Seed)
}

func TestSlogLevel(t *testing.T) {
	cfg := &Config{LogLevel: "info", Output: OutputText}

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	cfg.Verbose = true
	level, err = cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestValidateRejectsBadValues(t *testing.T) {
	assert.Error(t, (&Config{Output: "yaml", LogLevel: "warn"}).Validate())
	assert.Error(t, (&Config{Output: OutputText, LogLevel: "loud"}).Validate())
}
