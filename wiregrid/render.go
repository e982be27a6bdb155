package wiregrid

import (
	"bufio"
	"io"
)

// Glyphs used by Render.
const (
	glyphEmpty    = '.'
	glyphOrigin   = 'o'
	glyphWireA    = '1'
	glyphWireB    = '2'
	glyphCrossing = 'X'
)

// glyph returns the character drawn for grid position (x,y).
func (gg *GridGraph) glyph(x, y int) byte {
	if ox, oy, ok := gg.Origin(); ok && x == ox && y == oy {
		return glyphOrigin
	}
	switch gg.CellValues[y][x] & Crossing {
	case WireA:
		return glyphWireA
	case WireB:
		return glyphWireB
	case Crossing:
		return glyphCrossing
	}
	return glyphEmpty
}

// Render writes the grid as text, one line per row, largest Y first.
// The origin is 'o', cells on one wire are '1' or '2', crossings are 'X'
// and empty cells are '.'.
// Complexity: O(W×H).
func (gg *GridGraph) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	line := make([]byte, gg.Width+1)
	line[gg.Width] = '\n'
	for y := gg.Height - 1; y >= 0; y-- {
		for x := 0; x < gg.Width; x++ {
			line[x] = gg.glyph(x, y)
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
