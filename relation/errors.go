package relation

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyMatrix is returned when a matrix constructor receives a
	// matrix without rows; the column count would be undefined.
	ErrEmptyMatrix = errors.New("matrix must have at least one row")
)

// ErrInvalidParameters indicates a windowed constructor whose window
// dimensions are not powers of the arities with a common exponent.
type ErrInvalidParameters struct {
	NR      int // requested window rows
	NC      int // requested window columns
	Kr      int // row arity
	Kc      int // column arity
	H       int // derived height
	NumRows int // kr^h
	NumCols int // kc^h
}

// Error returns the error message for invalid window parameters.
func (e *ErrInvalidParameters) Error() string {
	return fmt.Sprintf(
		"unsuitable parameters: the numbers of rows (nr) and columns (nc) have to be powers of kr resp. kc using the same exponent h, "+
			"but nr = %d, nc = %d, kr = %d and kc = %d lead to h = %d and %d rows resp. %d columns",
		e.NR, e.NC, e.Kr, e.Kc, e.H, e.NumRows, e.NumCols,
	)
}

// ErrInvalidArity indicates row or column arities below 2.
type ErrInvalidArity struct {
	Kr int
	Kc int
}

// Error returns the error message for invalid arities.
func (e *ErrInvalidArity) Error() string {
	return fmt.Sprintf("invalid arity: kr = %d, kc = %d (both must be >= 2)", e.Kr, e.Kc)
}
