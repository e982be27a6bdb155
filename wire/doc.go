// Package wire traces two wires laid out on an integer grid and finds
// where they cross.
//
// What:
//
//   - A Path is a sequence of Moves such as "R8,U5,L5,D3": a direction
//     letter (U, D, L, R) followed by a step count.
//   - Trace walks a Path from the origin one cell at a time and records the
//     step count at which every cell was first reached.
//   - Intersections joins two traces on coordinates; each Crossing keeps
//     both wires' first-visit step counts.
//   - Nearest picks the crossing closest to the origin by Manhattan
//     distance, Fastest the one with the smallest combined step count.
//
// Why:
//
//   - Circuit puzzles: find where two wires touch and how far along each
//     wire the contact happens.
//
// Complexity:
//
//   - Trace:         O(S) time and memory, S = total steps of the path.
//   - Intersections: O(min(|A|,|B|) + K log K), K = number of crossings.
//   - Nearest/Fastest: O(K).
//
// Errors:
//
//   - ErrBadDirection: move letter is not one of U, D, L, R.
//   - ErrBadMove: move token is empty or its count is not a non-negative integer.
//   - ErrEmptyPath: a path line holds no moves.
//   - ErrPathCount: Solve was not given exactly two paths.
//   - ErrNoIntersection: the wires never cross outside the origin.
package wire
