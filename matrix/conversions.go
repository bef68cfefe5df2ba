// SPDX-License-Identifier: MIT
// Package matrix - conversions between *Sparse and gonum dense types.
//
// Purpose:
//   - Hand assembled operators to the dense LAPACK-backed solvers (ToDense, SymDenseOf).
//   - Build a *Sparse from any mat.Matrix (FromDense), e.g. after loading a file
//     that stores a dense payload.
//
// Contract:
//   - Inputs are never mutated; outputs never alias the inputs.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToDense materializes m into a new r×c *mat.Dense.
//
// Errors:
//   - ErrNotAssembled before assembly.
//
// Complexity:
//   - Time O(r·c) for the zero fill plus O(nnz); Space O(r·c).
func (m *Sparse) ToDense() (*mat.Dense, error) {
	if !m.Assembled() {
		return nil, fmt.Errorf("Sparse.ToDense: %w", ErrNotAssembled)
	}
	r, c := m.Dims()
	d := mat.NewDense(r, c, nil)
	m.DoNonZero(func(i, j int, v float64) { d.Set(i, j, v) })

	return d, nil
}

// SymDenseOf returns a symmetric dense copy of a, after checking symmetry within eps.
// The upper triangle of a is the one kept.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotAssembled, ErrAsymmetry (see ValidateSymmetric).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func SymDenseOf(a mat.Matrix, eps float64) (*mat.SymDense, error) {
	if err := ValidateSymmetric(a, eps); err != nil {
		return nil, fmt.Errorf("SymDenseOf: %w", err)
	}
	n, _ := a.Dims()
	out := mat.NewSymDense(n, nil)

	switch src := a.(type) {
	case mat.Symmetric:
		out.CopySym(src)
	case *Sparse:
		src.DoNonZero(func(i, j int, v float64) {
			if i <= j {
				out.SetSym(i, j, v)
			}
		})
	default:
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				out.SetSym(i, j, a.At(i, j))
			}
		}
	}

	return out, nil
}

// FromDense builds an assembled *Sparse holding the non-zero entries of a.
//
// Implementation:
//   - Stage 1: create the Sparse with opts (ranks, numeric policy).
//   - Stage 2: every Part copies its own rows; exact zeros are not stored.
//   - Stage 3: assemble.
//
// Errors:
//   - ErrNilMatrix for a nil input, ErrNaNInf under the strict numeric policy.
//
// Complexity:
//   - Time O(r·c), Space O(nnz).
func FromDense(a mat.Matrix, opts ...Option) (*Sparse, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("FromDense: %w", err)
	}
	r, c := a.Dims()
	m, err := NewSparse(r, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromDense: %w", err)
	}

	var v float64
	for _, p := range m.parts {
		for i := p.lo; i < p.hi; i++ {
			for j := 0; j < c; j++ {
				if v = a.At(i, j); v == 0 {
					continue
				}
				if err = p.Set(i, j, v); err != nil {
					return nil, fmt.Errorf("FromDense: %w", err)
				}
			}
		}
	}
	if err = m.Assemble(); err != nil {
		return nil, fmt.Errorf("FromDense: %w", err)
	}

	return m, nil
}
