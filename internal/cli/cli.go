// Package cli parses command-line arguments into a validated config.Config
// and maps failures to process exit codes.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/SondreSL/AdventOfCode/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Precedence, lowest first: defaults, -config file, explicit flags, the
// positional input path.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("day03", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
day03 - Crossed wires: nearest crossing and shortest signal delay.

Usage:
  day03 [options] [INPUT_PATH]

Arguments:
  INPUT_PATH
    Text file holding two wire paths, one per line (e.g. "R8,U5,L5,D3").

Options:
`)
		flagSet.PrintDefaults()
	}

	defaults := config.Default()
	inputFlag := flagSet.String("input", "", "Path to the puzzle input file.")
	iFlag := flagSet.String("i", "", "Path to the puzzle input file (shorthand).")
	configFlag := flagSet.String("config", "", "Optional HCL config file.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	drawFlag := flagSet.Bool("draw", defaults.Draw, "Draw both wires after the answers.")
	maxCellsFlag := flagSet.Int("max-draw-cells", defaults.MaxDrawCells, "Largest grid (width×height) -draw will render.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	cfg := defaults
	if *configFlag != "" {
		loaded, err := config.LoadFile(context.Background(), *configFlag, cfg)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = loaded
	}

	// Only flags the user actually passed override the config file.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.InputPath = *inputFlag
		case "i":
			if *inputFlag == "" {
				cfg.InputPath = *iFlag
			}
		case "log-level":
			cfg.LogLevel = strings.ToLower(*logLevelFlag)
		case "log-format":
			cfg.LogFormat = strings.ToLower(*logFormatFlag)
		case "draw":
			cfg.Draw = *drawFlag
		case "max-draw-cells":
			cfg.MaxDrawCells = *maxCellsFlag
		}
	})
	if flagSet.NArg() > 0 {
		cfg.InputPath = flagSet.Arg(0)
	}
	slog.Debug("Input path determined.", "path", cfg.InputPath)

	if cfg.InputPath == "" {
		slog.Debug("No input path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return &cfg, false, nil
}
