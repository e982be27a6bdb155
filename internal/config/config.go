package config

import (
	"errors"
	"fmt"

	"github.com/SondreSL/AdventOfCode/wiregrid"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds everything an App needs to run.
type Config struct {
	InputPath string

	LogLevel  string
	LogFormat string

	// Draw renders the wires after the answers.
	Draw bool
	// MaxDrawCells caps the size of the drawn grid.
	MaxDrawCells int
}

// Default returns the baseline configuration. InputPath is left empty.
func Default() Config {
	return Config{
		LogLevel:     "info",
		LogFormat:    "text",
		MaxDrawCells: wiregrid.DefaultMaxCells,
	}
}

// Validate reports the first problem with c.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("%w: input path is required", ErrInvalidConfig)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q must be 'debug', 'info', 'warn', or 'error'", ErrInvalidConfig, c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log format %q must be 'text' or 'json'", ErrInvalidConfig, c.LogFormat)
	}
	if c.MaxDrawCells <= 0 {
		return fmt.Errorf("%w: max draw cells must be positive, got %d", ErrInvalidConfig, c.MaxDrawCells)
	}
	return nil
}
