package wiregrid

import (
	"fmt"

	"github.com/SondreSL/AdventOfCode/wire"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// whose cell [0][0] sits at world coordinate lo.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, lo wire.Coord) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	return &GridGraph{
		Width:      w,
		Height:     h,
		MinX:       lo.X,
		MinY:       lo.Y,
		CellValues: cells,
	}, nil
}

// FromTraces rasterizes two wires onto the smallest grid holding both of
// them and the origin. a is marked WireA, b is marked WireB.
// Returns ErrTooLarge if the grid would exceed opts.MaxCells.
// Complexity: O(W×H + |a| + |b|) time, O(W×H) memory.
func FromTraces(a, b *wire.Visited, opts GridOptions) (*GridGraph, error) {
	limit := opts.MaxCells
	if limit <= 0 {
		limit = DefaultMaxCells
	}
	loA, hiA := a.Bounds()
	loB, hiB := b.Bounds()
	lo := wire.Coord{X: min(loA.X, loB.X), Y: min(loA.Y, loB.Y)}
	hi := wire.Coord{X: max(hiA.X, hiB.X), Y: max(hiA.Y, hiB.Y)}
	w, h := hi.X-lo.X+1, hi.Y-lo.Y+1
	// Compare per axis first so w*h cannot overflow.
	if w > limit || h > limit || w*h > limit {
		return nil, fmt.Errorf("%w: %d×%d > %d", ErrTooLarge, w, h, limit)
	}

	gg := &GridGraph{Width: w, Height: h, MinX: lo.X, MinY: lo.Y}
	gg.CellValues = make([][]int, h)
	for y := range gg.CellValues {
		gg.CellValues[y] = make([]int, w)
	}
	gg.mark(a, WireA)
	gg.mark(b, WireB)

	return gg, nil
}

// mark ORs bit into every cell v visits.
func (gg *GridGraph) mark(v *wire.Visited, bit int) {
	for _, p := range v.Points() {
		x, y := p.X-gg.MinX, p.Y-gg.MinY
		gg.CellValues[y][x] |= bit
	}
}

// InBounds reports whether grid position (x,y) lies within the grid.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Value returns the bitmask at world coordinate c, or Empty outside the grid.
// Complexity: O(1).
func (gg *GridGraph) Value(c wire.Coord) int {
	x, y := c.X-gg.MinX, c.Y-gg.MinY
	if !gg.InBounds(x, y) {
		return Empty
	}
	return gg.CellValues[y][x]
}

// Origin reports the grid position of world coordinate (0,0) and whether
// it lies within the grid.
func (gg *GridGraph) Origin() (x, y int, ok bool) {
	x, y = -gg.MinX, -gg.MinY
	return x, y, gg.InBounds(x, y)
}

// index maps grid position (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to a world coordinate.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) wire.Coord {
	return wire.Coord{X: idx%gg.Width + gg.MinX, Y: idx/gg.Width + gg.MinY}
}

// Crossings returns the row-major indices of all cells both wires occupy,
// in ascending order. Use Coordinate to map them back.
// Complexity: O(W×H).
func (gg *GridGraph) Crossings() []int {
	var out []int
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.CellValues[y][x]&Crossing == Crossing {
				out = append(out, gg.index(x, y))
			}
		}
	}
	return out
}
