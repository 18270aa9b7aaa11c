package basis

import "fmt"

// Validate rejects vector sets that cannot enter the Gram-Schmidt process:
// empty sets, mismatched vector lengths, and exact zero vectors. It returns
// the first violation found, wrapped in ErrInvalidInput, and has no side
// effects on the input.
func Validate(vectors [][]float64) error {
	if len(vectors) == 0 {
		return fmt.Errorf("%w: no vectors provided", ErrInvalidInput)
	}

	lengths := make([]int, len(vectors))
	mismatch := false
	for i, v := range vectors {
		lengths[i] = len(v)
		if len(v) != len(vectors[0]) {
			mismatch = true
		}
	}
	if mismatch {
		return fmt.Errorf("%w: all vectors must have the same dimension, found dimensions %v", ErrInvalidInput, lengths)
	}

	for i, v := range vectors {
		if isZero(v) {
			return fmt.Errorf("%w: vector at index %d is a zero vector", ErrInvalidInput, i)
		}
	}

	return nil
}

func isZero(v []float64) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}
