// Package wire defines the grid primitives shared by parsing, tracing
// and intersection.
package wire

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction is one of the four orthogonal move directions.
type Direction byte

const (
	// Up moves towards +Y.
	Up Direction = 'U'
	// Down moves towards -Y.
	Down Direction = 'D'
	// Left moves towards -X.
	Left Direction = 'L'
	// Right moves towards +X.
	Right Direction = 'R'
)

// Delta returns the unit offset (dx, dy) of d.
// An unknown direction yields (0, 0).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// String returns the single-letter form of d.
func (d Direction) String() string {
	return string(rune(d))
}

// Move is a straight run of Count cells in direction Dir.
type Move struct {
	Dir   Direction
	Count int
}

// String returns the move in its input form, e.g. "R8".
func (m Move) String() string {
	return m.Dir.String() + strconv.Itoa(m.Count)
}

// Path is the ordered list of moves one wire makes from the origin.
type Path []Move

// Steps returns the total number of cells the path walks.
func (p Path) Steps() int {
	n := 0
	for _, m := range p {
		n += m.Count
	}
	return n
}

// String returns the comma-separated form of p, e.g. "R8,U5,L5,D3".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, m := range p {
		parts[i] = m.String()
	}
	return strings.Join(parts, ",")
}

// Coord is an integer grid coordinate. The origin is the zero value.
type Coord struct {
	X, Y int
}

// Add returns c shifted by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// String formats c as "x,y".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Point is a coordinate together with the step count at which a wire
// first reached it.
type Point struct {
	Coord
	Steps int
}

// Crossing is a coordinate reached by both wires.
// StepsA and StepsB are each wire's first-visit step count.
type Crossing struct {
	Coord
	StepsA, StepsB int
}

// Distance returns the Manhattan distance of the crossing from the origin.
func (c Crossing) Distance() int {
	return Manhattan(c.Coord)
}

// Delay returns the combined number of steps both wires need to reach
// the crossing.
func (c Crossing) Delay() int {
	return c.StepsA + c.StepsB
}

// Result holds the answers for a pair of wires.
type Result struct {
	// Distance is the Manhattan distance of the nearest crossing.
	Distance int
	// Delay is the smallest combined step count over all crossings.
	Delay int
	// Crossings lists every crossing, ordered as Intersections returns them.
	Crossings []Crossing
}

// Manhattan returns |x| + |y|.
func Manhattan(c Coord) int {
	return abs(c.X) + abs(c.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
