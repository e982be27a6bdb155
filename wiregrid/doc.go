// Package wiregrid lays two traced wires onto a bounded 2D grid so they can
// be inspected cell by cell or drawn as an ASCII diagram.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid whose cells are bitmasks:
//     WireA, WireB, or both (Crossing).
//   - FromTraces sizes the grid to the bounding box of both wires and the
//     origin, then marks every visited cell.
//   - Coordinate and Value translate between row-major indices and world
//     coordinates, which may be negative.
//   - Render prints the grid top row first (largest Y), in the style of the
//     puzzle statement.
//
// Why:
//
//   - Debugging: see where two wires run and where they touch.
//
// Complexity:
//
//   - FromTraces: O(W×H + |A| + |B|) time, O(W×H) memory.
//   - Crossings:  O(W×H).
//   - Render:     O(W×H).
//
// Options:
//
//   - GridOptions.MaxCells: upper bound on W×H accepted by FromTraces.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrTooLarge: the wires span more cells than GridOptions.MaxCells.
package wiregrid
