package config

import (
	"context"
	"fmt"

	"github.com/SondreSL/AdventOfCode/internal/ctxlog"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// fileConfig mirrors Config for HCL decoding. Pointer fields distinguish
// an absent attribute from a zero value.
type fileConfig struct {
	Input        *string `hcl:"input,optional"`
	LogLevel     *string `hcl:"log_level,optional"`
	LogFormat    *string `hcl:"log_format,optional"`
	Draw         *bool   `hcl:"draw,optional"`
	MaxDrawCells *int    `hcl:"max_draw_cells,optional"`
}

// LoadFile parses the HCL file at path and overlays every attribute it sets
// onto base. The result is not validated.
func LoadFile(ctx context.Context, path string, base Config) (Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding config file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return base, fmt.Errorf("failed to parse config file %s: %s", path, diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return base, fmt.Errorf("failed to decode config file %s: %s", path, diags.Error())
	}

	cfg := base
	if fc.Input != nil {
		cfg.InputPath = *fc.Input
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		cfg.LogFormat = *fc.LogFormat
	}
	if fc.Draw != nil {
		cfg.Draw = *fc.Draw
	}
	if fc.MaxDrawCells != nil {
		cfg.MaxDrawCells = *fc.MaxDrawCells
	}

	logger.Debug("Successfully decoded config file.", "path", path, "input", cfg.InputPath)
	return cfg, nil
}
