package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNonDigit indicates a character outside '0'..'9' in the text form.
	ErrNonDigit = errors.New("grid: cell is not a decimal digit")
	// ErrBadCost indicates a cell value outside 0..9.
	ErrBadCost = errors.New("grid: cell cost out of range")
)
