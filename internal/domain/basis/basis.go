// Package basis implements the Gram-Schmidt orthonormalization core: input
// validation, basis computation with dependency detection, and an
// orthonormality diagnostic. All operations are pure functions over
// double-precision vectors; nothing here holds state across calls.
package basis

import (
	"fmt"
	"math"
)

const (
	// DependencyTol is the residual norm below which a deflated vector is
	// treated as linearly dependent on the basis built so far.
	DependencyTol = 1e-10

	// OrthoTol bounds the rounding slack accepted by the orthonormality
	// checker, looser than DependencyTol because it tolerates input
	// rounding rather than detecting near-zero residuals.
	OrthoTol = 1e-6
)

// Result holds the outcome of a basis computation.
type Result struct {
	Basis         [][]float64
	IsIndependent bool
	Dimension     int
	InputCount    int
	VectorSize    int
	OutputCount   int
}

// ComputeBasis runs the classical Gram-Schmidt process over the input
// vectors in order: each vector is deflated against the basis built so far,
// discarded if its residual norm falls below DependencyTol, and otherwise
// normalized and appended. Input slices are never mutated.
//
// Fails with ErrInvalidInput when validation rejects the set, and with
// ErrDegenerateInput when every vector deflates to zero.
func ComputeBasis(vectors [][]float64) (*Result, error) {
	if err := Validate(vectors); err != nil {
		return nil, err
	}

	orthonormal := make([][]float64, 0, len(vectors))
	for _, src := range vectors {
		v := make([]float64, len(src))
		copy(v, src)

		// Iterative deflation against the basis in insertion order.
		for _, b := range orthonormal {
			coeff := dot(v, b)
			for t := range v {
				v[t] -= coeff * b[t]
			}
		}

		n := norm(v)
		if n < DependencyTol {
			continue
		}
		for t := range v {
			v[t] /= n
		}
		orthonormal = append(orthonormal, v)
	}

	if len(orthonormal) == 0 {
		return nil, fmt.Errorf("%w: all vectors are linearly dependent", ErrDegenerateInput)
	}

	return &Result{
		Basis:         orthonormal,
		IsIndependent: len(orthonormal) == len(vectors),
		Dimension:     len(orthonormal),
		InputCount:    len(vectors),
		VectorSize:    len(vectors[0]),
		OutputCount:   len(orthonormal),
	}, nil
}

func dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func norm(a []float64) float64 {
	s := 0.0
	for _, v := range a {
		s += v * v
	}
	return math.Sqrt(s)
}
