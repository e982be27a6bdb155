package wire

import "sort"

// Visited is the set of cells one wire passes through, each mapped to the
// step count at which the wire first reached it. The origin is not part
// of the set. A Visited is immutable once Trace returns it.
type Visited struct {
	steps    map[Coord]int
	end      Point
	min, max Coord
}

// Trace walks p from the origin and records every cell it enters.
// A cell entered more than once keeps its first step count; returning to
// the origin records nothing since the wire was already there at step 0.
// Complexity: O(S) time and memory, S = p.Steps().
func Trace(p Path) *Visited {
	v := &Visited{steps: make(map[Coord]int, p.Steps())}
	pos, steps := Coord{}, 0
	for _, m := range p {
		dx, dy := m.Dir.Delta()
		for i := 0; i < m.Count; i++ {
			pos = pos.Add(dx, dy)
			steps++
			if _, seen := v.steps[pos]; !seen && pos != (Coord{}) {
				v.steps[pos] = steps
			}
			v.grow(pos)
		}
	}
	v.end = Point{Coord: pos, Steps: steps}

	return v
}

// grow extends the bounding box to include c. The box always holds the origin.
func (v *Visited) grow(c Coord) {
	v.min.X = min(v.min.X, c.X)
	v.min.Y = min(v.min.Y, c.Y)
	v.max.X = max(v.max.X, c.X)
	v.max.Y = max(v.max.Y, c.Y)
}

// Len returns the number of distinct cells visited.
func (v *Visited) Len() int {
	return len(v.steps)
}

// Contains reports whether the wire passes through c.
func (v *Visited) Contains(c Coord) bool {
	_, ok := v.steps[c]
	return ok
}

// Steps returns the first-visit step count of c.
func (v *Visited) Steps(c Coord) (int, bool) {
	s, ok := v.steps[c]
	return s, ok
}

// End returns the final position of the wire and its total step count.
func (v *Visited) End() Point {
	return v.end
}

// Bounds returns the corners of the smallest box holding the origin and
// every visited cell.
func (v *Visited) Bounds() (lo, hi Coord) {
	return v.min, v.max
}

// Points returns every visited cell ordered by first-visit step count.
func (v *Visited) Points() []Point {
	pts := make([]Point, 0, len(v.steps))
	for c, s := range v.steps {
		pts = append(pts, Point{Coord: c, Steps: s})
	}
	// Step counts are unique per cell, so the order is total.
	sort.Slice(pts, func(i, j int) bool { return pts[i].Steps < pts[j].Steps })

	return pts
}
