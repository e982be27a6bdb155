package wire

import "errors"

// Sentinel errors for wire operations.
var (
	// ErrBadDirection indicates a move letter other than U, D, L or R.
	ErrBadDirection = errors.New("wire: unknown direction")
	// ErrBadMove indicates a move token that cannot be parsed.
	ErrBadMove = errors.New("wire: malformed move")
	// ErrEmptyPath indicates a path with no moves.
	ErrEmptyPath = errors.New("wire: path has no moves")
	// ErrPathCount indicates Solve received other than two paths.
	ErrPathCount = errors.New("wire: exactly two paths are required")
	// ErrNoIntersection indicates the two wires never cross.
	ErrNoIntersection = errors.New("wire: wires do not intersect")
)
