package basis

import "errors"

var (
	// ErrInvalidInput marks malformed or semantically invalid request data:
	// empty set, mismatched dimensions, or a zero vector.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateInput marks a vector set that collapsed entirely during
	// orthonormalization (every vector linearly dependent).
	ErrDegenerateInput = errors.New("degenerate input")
)
