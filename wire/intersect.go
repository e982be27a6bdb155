package wire

import (
	"fmt"
	"sort"
)

// Intersections returns every cell both wires pass through. The origin is
// never a crossing because Trace does not record it.
// Crossings are ordered by Distance, then Delay, then (X, Y).
// Complexity: O(min(|a|,|b|) + K log K) time, K = number of crossings.
func Intersections(a, b *Visited) []Crossing {
	small, large, swapped := a, b, false
	if b.Len() < a.Len() {
		small, large, swapped = b, a, true
	}
	var out []Crossing
	for c, s := range small.steps {
		t, ok := large.steps[c]
		if !ok {
			continue
		}
		if swapped {
			s, t = t, s
		}
		out = append(out, Crossing{Coord: c, StepsA: s, StepsB: t})
	}
	sort.Slice(out, func(i, j int) bool {
		ci, cj := out[i], out[j]
		if di, dj := ci.Distance(), cj.Distance(); di != dj {
			return di < dj
		}
		if di, dj := ci.Delay(), cj.Delay(); di != dj {
			return di < dj
		}
		if ci.X != cj.X {
			return ci.X < cj.X
		}
		return ci.Y < cj.Y
	})

	return out
}

// Nearest returns the crossing with the smallest Manhattan distance.
// Ties resolve to the earliest crossing in cs.
func Nearest(cs []Crossing) (Crossing, error) {
	return minBy(cs, Crossing.Distance)
}

// Fastest returns the crossing with the smallest combined step count.
// Ties resolve to the earliest crossing in cs.
func Fastest(cs []Crossing) (Crossing, error) {
	return minBy(cs, Crossing.Delay)
}

func minBy(cs []Crossing, key func(Crossing) int) (Crossing, error) {
	if len(cs) == 0 {
		return Crossing{}, ErrNoIntersection
	}
	best := cs[0]
	for _, c := range cs[1:] {
		if key(c) < key(best) {
			best = c
		}
	}
	return best, nil
}

// Solve traces both paths and answers both questions: the distance of the
// nearest crossing and the smallest combined delay.
// Returns ErrPathCount unless exactly two paths are given, and
// ErrNoIntersection if the wires never cross.
func Solve(paths []Path) (Result, error) {
	if len(paths) != 2 {
		return Result{}, fmt.Errorf("%w: got %d", ErrPathCount, len(paths))
	}
	crossings := Intersections(Trace(paths[0]), Trace(paths[1]))
	near, err := Nearest(crossings)
	if err != nil {
		return Result{}, err
	}
	fast, err := Fastest(crossings)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Distance:  near.Distance(),
		Delay:     fast.Delay(),
		Crossings: crossings,
	}, nil
}
