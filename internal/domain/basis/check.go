package basis

import (
	"fmt"
	"math"
)

// Report is the outcome of an orthonormality check: a verdict plus one
// detail line per violated constraint, or a single success line.
type Report struct {
	IsOrthonormal bool
	Details       []string
	InputCount    int
	VectorSize    int
}

// CheckOrthonormal reports whether the given vectors form an orthonormal
// set. It is a diagnostic, not a basis-construction step: zero vectors and
// dependent sets are legal input and simply produce violations. Norm
// violations are reported first for every index, then dot-product violations
// in pair order (0,1),(0,2),...,(1,2),...
//
// Only an empty list or mismatched vector lengths fail with ErrInvalidInput.
func CheckOrthonormal(vectors [][]float64) (*Report, error) {
	if len(vectors) == 0 {
		return nil, fmt.Errorf("%w: no vectors provided", ErrInvalidInput)
	}
	for _, v := range vectors {
		if len(v) != len(vectors[0]) {
			return nil, fmt.Errorf("%w: all vectors must have the same dimension", ErrInvalidInput)
		}
	}

	var details []string
	for i, v := range vectors {
		if n := norm(v); math.Abs(n-1.0) > OrthoTol {
			details = append(details, fmt.Sprintf("Vector %d is not unit length (norm = %.6f)", i, n))
		}
	}
	for i := range vectors {
		for j := i + 1; j < len(vectors); j++ {
			if d := dot(vectors[i], vectors[j]); math.Abs(d) > OrthoTol {
				details = append(details, fmt.Sprintf("Vectors %d and %d are not orthogonal (dot product = %.6f)", i, j, d))
			}
		}
	}

	ok := len(details) == 0
	if ok {
		details = []string{"All vectors are orthonormal!"}
	}

	return &Report{
		IsOrthonormal: ok,
		Details:       details,
		InputCount:    len(vectors),
		VectorSize:    len(vectors[0]),
	}, nil
}
