// Package app wires configuration, logging and the wire solver into a
// single run: read the input, answer both parts, optionally draw the grid.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/SondreSL/AdventOfCode/internal/config"
	"github.com/SondreSL/AdventOfCode/internal/ctxlog"
	"github.com/SondreSL/AdventOfCode/wire"
	"github.com/SondreSL/AdventOfCode/wiregrid"
)

// App holds the writers and configuration of one run.
type App struct {
	outW   io.Writer
	cfg    *config.Config
	logger *slog.Logger
}

// NewApp builds an App that writes answers to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *config.Config) *App {
	return &App{
		outW:   outW,
		cfg:    cfg,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, logW),
	}
}

// Run reads the input file, solves both parts and writes
//
//	Part A: <distance>
//	Part B: <delay>
//
// followed by the wire diagram when Draw is set.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)

	paths, err := loadPaths(ctx, a.cfg.InputPath)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	res, err := wire.Solve(paths)
	if err != nil {
		return fmt.Errorf("solving %s: %w", a.cfg.InputPath, err)
	}
	logger.Debug("Solved.", "crossings", len(res.Crossings), "distance", res.Distance, "delay", res.Delay)

	if _, err := fmt.Fprintf(a.outW, "Part A: %d\nPart B: %d\n", res.Distance, res.Delay); err != nil {
		return fmt.Errorf("writing answers: %w", err)
	}

	if !a.cfg.Draw {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.draw(ctx, paths)
}

// loadPaths opens and parses the puzzle input.
func loadPaths(ctx context.Context, path string) ([]wire.Path, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Reading input.", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	paths, err := wire.ReadPaths(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for i, p := range paths {
		logger.Debug("Parsed wire.", "wire", i+1, "moves", len(p), "steps", p.Steps())
	}
	return paths, nil
}

// draw renders both wires. A grid over the cell limit is skipped with a warning.
func (a *App) draw(ctx context.Context, paths []wire.Path) error {
	logger := ctxlog.FromContext(ctx)

	gg, err := wiregrid.FromTraces(wire.Trace(paths[0]), wire.Trace(paths[1]), wiregrid.GridOptions{MaxCells: a.cfg.MaxDrawCells})
	if errors.Is(err, wiregrid.ErrTooLarge) {
		logger.Warn("Skipping drawing.", "reason", err.Error())
		return nil
	}
	if err != nil {
		return fmt.Errorf("drawing wires: %w", err)
	}

	logger.Debug("Drawing wires.", "width", gg.Width, "height", gg.Height)
	if _, err := fmt.Fprintln(a.outW); err != nil {
		return fmt.Errorf("drawing wires: %w", err)
	}
	if err := gg.Render(a.outW); err != nil {
		return fmt.Errorf("drawing wires: %w", err)
	}
	return nil
}
