// Package config collects the runtime settings of the seam tools from the
// environment.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds process-level settings.
type Config struct {
	// LogLevel is one of DEBUG, INFO, WARN, ERROR.
	LogLevel string
	// LogFormat is "console" or "json".
	LogFormat string
	// Backend selects the compute backend: "cpu" or "webgpu".
	Backend string
}

// FromEnv builds a Config from SEAM_* environment variables, with defaults
// for anything unset.
func FromEnv() *Config {
	c := &Config{
		LogLevel:  envOr("SEAM_LOG_LEVEL", "INFO"),
		LogFormat: envOr("SEAM_LOG_FORMAT", "console"),
		Backend:   envOr("SEAM_BACKEND", "cpu"),
	}
	return c
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		return fmt.Errorf("invalid log level: %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format: %q", c.LogFormat)
	}
	switch strings.ToLower(c.Backend) {
	case "cpu", "webgpu":
	default:
		return fmt.Errorf("invalid backend: %q", c.Backend)
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
