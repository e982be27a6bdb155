// Package config defines the run configuration of the solver: where the
// puzzle input lives, how to log, and whether to draw the wires.
//
// A Config starts from Default, may be overlaid by an HCL file through
// LoadFile, and is finally overlaid by command-line flags in the cli
// package. Validate is the single gate before a Config is used.
//
// Example file:
//
//	input          = "data/input-2019-3.txt"
//	log_level      = "debug"
//	log_format     = "json"
//	draw           = true
//	max_draw_cells = 4096
package config
