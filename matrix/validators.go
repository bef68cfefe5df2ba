// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the shape/nil/symmetry checks shared
//    by the conversions here and by the eigen package.
//  - Work on any gonum mat.Matrix; *Sparse gets an O(nnz log k) symmetry path.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape → Values).

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures m is non-nil, including a typed nil *Sparse.
// Complexity: O(1).
func ValidateNotNil(m mat.Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if s, ok := m.(*Sparse); ok && s == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m mat.Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if r, c := m.Dims(); r != c {
		return validatorErrorf(fmt.Sprintf("ValidateSquare(%dx%d)", r, c), ErrNonSquare)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with equal dimensions.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b mat.Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape(%dx%d, %dx%d)", ar, ac, br, bc), ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures len(x) == n.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen(len=%d, want=%d)", len(x), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks that m is square and |m[i,j] - m[j,i]| <= eps.
//
// Implementation:
//   - mat.Symmetric inputs pass without inspection.
//   - *Sparse walks its stored entries and looks up each mirror; the matrix
//     must be assembled (ErrNotAssembled otherwise).
//   - Any other mat.Matrix is scanned on the strict upper triangle.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotAssembled, ErrAsymmetry.
//
// Complexity:
//   - *Sparse: O(nnz log k); generic: O(n²).
func ValidateSymmetric(m mat.Matrix, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if _, ok := m.(mat.Symmetric); ok {
		return nil
	}

	if s, ok := m.(*Sparse); ok {
		if !s.Assembled() {
			return validatorErrorf("ValidateSymmetric", ErrNotAssembled)
		}
		for i := 0; i < s.layout.n; i++ {
			for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
				j := s.colIdx[k]
				mirror, _ := s.Value(j, i) // indices are in range: the matrix is square
				if !withinEps(s.vals[k], mirror, eps) {
					return validatorErrorf(fmt.Sprintf("ValidateSymmetric(%d,%d)", i, j), ErrAsymmetry)
				}
			}
		}
		return nil
	}

	n, _ := m.Dims()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !withinEps(m.At(i, j), m.At(j, i), eps) {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric(%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}

// withinEps reports |a-b| <= eps; NaN never compares equal.
func withinEps(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
