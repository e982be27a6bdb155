// Package wiregrid defines cell values, options and the GridGraph type.
package wiregrid

// Cell values are bitmasks of the wires occupying a cell.
const (
	// Empty marks a cell no wire passes through.
	Empty = 0
	// WireA marks a cell on the first wire.
	WireA = 1 << 0
	// WireB marks a cell on the second wire.
	WireB = 1 << 1
	// Crossing marks a cell on both wires.
	Crossing = WireA | WireB
)

// DefaultMaxCells bounds the grid FromTraces will allocate.
const DefaultMaxCells = 1 << 20

// GridOptions contains tunable parameters for rasterization.
type GridOptions struct {
	// MaxCells is the largest Width×Height FromTraces accepts.
	// Values ≤ 0 fall back to DefaultMaxCells.
	MaxCells int
}

// DefaultGridOptions returns GridOptions with MaxCells=DefaultMaxCells.
func DefaultGridOptions() GridOptions {
	return GridOptions{MaxCells: DefaultMaxCells}
}

// GridGraph is an immutable raster of two wires.
// Width and Height define dimensions; CellValues[y][x] holds the bitmask of
// the cell at world coordinate (MinX+x, MinY+y). Row 0 is the lowest Y.
type GridGraph struct {
	Width, Height int
	MinX, MinY    int
	CellValues    [][]int
}
