package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/mcoot/equatix/internal/factory"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	Layout   string
	Seed     int64
	Seeded   bool
	Output   string
	Color    bool
	LogLevel string
	Verbose  bool
}

// DefaultConfig returns a Config with default values, overridden by any
// EQUATIX_* environment variables
func DefaultConfig() *Config {
	cfg := &Config{
		Layout:   getEnvOrDefault("EQUATIX_LAYOUT", "standard"),
		Output:   getEnvOrDefault("EQUATIX_OUTPUT", OutputText),
		Color:    getEnvOrDefault("EQUATIX_COLOR", "true") != "false",
		LogLevel: getEnvOrDefault("EQUATIX_LOG_LEVEL", "warn"),
		Verbose:  false,
	}
	if seed, err := strconv.ParseInt(os.Getenv("EQUATIX_SEED"), 10, 64); err == nil {
		cfg.Seed = seed
		cfg.Seeded = true
	}
	return cfg
}

// Validate checks the values that flags and environment can get wrong
func (c *Config) Validate() error {
	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("invalid output format %q: must be text or json", c.Output)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel. Verbose forces debug.
func (c *Config) SlogLevel() (slog.Level, error) {
	if c.Verbose {
		return slog.LevelDebug, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// NewLogger builds the application logger. Logs go to w so they never mix
// with json output on stdout.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := c.SlogLevel()
	if err != nil {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Output == OutputJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// FactoryConfig converts the CLI settings into application settings
func (c *Config) FactoryConfig(logger *slog.Logger) factory.Config {
	return factory.Config{
		Layout: c.Layout,
		Seed:   c.Seed,
		Seeded: c.Seeded,
		Logger: logger,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
