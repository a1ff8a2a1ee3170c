package matrix

import "errors"

var (
	// ErrBadDimensions is returned when a matrix is allocated with a
	// negative sequence length or model length.
	ErrBadDimensions = errors.New("matrix: length and model size must both be >= 0")

	// ErrOutOfRange is returned by checked accessors when (i,k) falls
	// outside the matrix's allocated bounds.
	ErrOutOfRange = errors.New("matrix: (i,k) index out of range")
)
