package wiregrid

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("wiregrid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("wiregrid: all rows must have the same length")
	// ErrTooLarge indicates the wires span more cells than allowed.
	ErrTooLarge = errors.New("wiregrid: grid exceeds the cell limit")
)
