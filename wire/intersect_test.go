package wire_test

import (
	"testing"

	"github.com/SondreSL/AdventOfCode/wire"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Intersections
//----------------------------------------------------------------------------//

// TestIntersections_Sample lists both crossings of the first sample.
func TestIntersections_Sample(t *testing.T) {
	a := wire.Trace(mustPath(t, "R8,U5,L5,D3"))
	b := wire.Trace(mustPath(t, "U7,R6,D4,L4"))

	want := []wire.Crossing{
		{Coord: wire.Coord{X: 3, Y: 3}, StepsA: 20, StepsB: 20},
		{Coord: wire.Coord{X: 6, Y: 5}, StepsA: 15, StepsB: 15},
	}
	if diff := cmp.Diff(want, wire.Intersections(a, b)); diff != "" {
		t.Errorf("Intersections mismatch (-want +got):\n%s", diff)
	}
}

// TestIntersections_KeepsWireOrder iterates the smaller set internally but
// must still report StepsA for the first argument.
func TestIntersections_KeepsWireOrder(t *testing.T) {
	a := wire.Trace(mustPath(t, "R10"))
	b := wire.Trace(mustPath(t, "U1,R3,D1"))
	require.Less(t, b.Len(), a.Len())

	got := wire.Intersections(a, b)
	want := []wire.Crossing{{Coord: wire.Coord{X: 3, Y: 0}, StepsA: 3, StepsB: 5}}
	assert.Equal(t, want, got)

	rev := wire.Intersections(b, a)
	assert.Equal(t, []wire.Crossing{{Coord: wire.Coord{X: 3, Y: 0}, StepsA: 5, StepsB: 3}}, rev)
}

// TestIntersections_SharedOriginOnly finds nothing when the wires only meet at the start.
func TestIntersections_SharedOriginOnly(t *testing.T) {
	a := wire.Trace(mustPath(t, "R1,L1"))
	b := wire.Trace(mustPath(t, "U1,D1"))
	assert.Empty(t, wire.Intersections(a, b))
}

//----------------------------------------------------------------------------//
// Nearest / Fastest
//----------------------------------------------------------------------------//

// TestNearestFastest_Empty reports ErrNoIntersection.
func TestNearestFastest_Empty(t *testing.T) {
	_, err := wire.Nearest(nil)
	assert.ErrorIs(t, err, wire.ErrNoIntersection)
	_, err = wire.Fastest(nil)
	assert.ErrorIs(t, err, wire.ErrNoIntersection)
}

// TestNearestFastest_Pick checks both reductions and tie-breaking.
func TestNearestFastest_Pick(t *testing.T) {
	cs := []wire.Crossing{
		{Coord: wire.Coord{X: 1, Y: 2}, StepsA: 10, StepsB: 10},
		{Coord: wire.Coord{X: -2, Y: 1}, StepsA: 4, StepsB: 4},
		{Coord: wire.Coord{X: 5, Y: -5}, StepsA: 1, StepsB: 2},
	}

	near, err := wire.Nearest(cs)
	require.NoError(t, err)
	assert.Equal(t, cs[0], near, "equal distances resolve to the first crossing")
	assert.Equal(t, 3, near.Distance())

	fast, err := wire.Fastest(cs)
	require.NoError(t, err)
	assert.Equal(t, cs[2], fast)
	assert.Equal(t, 3, fast.Delay())
	assert.Equal(t, 10, fast.Distance())
}

//----------------------------------------------------------------------------//
// Solve
//----------------------------------------------------------------------------//

// TestSolve_Samples checks the published examples for both parts.
func TestSolve_Samples(t *testing.T) {
	cases := []struct {
		name     string
		a, b     string
		distance int
		delay    int
	}{
		{"Small", "R8,U5,L5,D3", "U7,R6,D4,L4", 6, 30},
		{"Medium", "R75,D30,R83,U83,L12,D49,R71,U7,L72", "U62,R66,U55,R34,D71,R55,D58,R83", 159, 610},
		{"Large", "R98,U47,R26,D63,R33,U87,L62,D20,R33,U53,R51", "U98,R91,D20,R16,D67,R40,U7,R15,U6,R7", 135, 410},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := wire.Solve([]wire.Path{mustPath(t, tc.a), mustPath(t, tc.b)})
			require.NoError(t, err)
			assert.Equal(t, tc.distance, res.Distance, "distance")
			assert.Equal(t, tc.delay, res.Delay, "delay")
			require.NotEmpty(t, res.Crossings)
			assert.Equal(t, tc.distance, res.Crossings[0].Distance(), "crossings are ordered by distance")
		})
	}
}

// TestSolve_Errors covers a wrong path count and wires that never cross.
func TestSolve_Errors(t *testing.T) {
	one := []wire.Path{mustPath(t, "R1")}
	_, err := wire.Solve(one)
	assert.ErrorIs(t, err, wire.ErrPathCount)

	three := []wire.Path{mustPath(t, "R1"), mustPath(t, "U1"), mustPath(t, "L1")}
	_, err = wire.Solve(three)
	assert.ErrorIs(t, err, wire.ErrPathCount)

	apart := []wire.Path{mustPath(t, "R2"), mustPath(t, "L2")}
	_, err = wire.Solve(apart)
	assert.ErrorIs(t, err, wire.ErrNoIntersection)
}

// TestManhattan covers all four quadrants.
func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, wire.Manhattan(wire.Coord{}))
	assert.Equal(t, 7, wire.Manhattan(wire.Coord{X: 3, Y: 4}))
	assert.Equal(t, 7, wire.Manhattan(wire.Coord{X: -3, Y: 4}))
	assert.Equal(t, 7, wire.Manhattan(wire.Coord{X: -3, Y: -4}))
	assert.Equal(t, 7, wire.Manhattan(wire.Coord{X: 3, Y: -4}))
}
