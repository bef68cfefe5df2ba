// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All functions MUST return these sentinels (wrapped with an op tag via
// %w) and tests MUST check them via errors.Is. The gonum-facing accessors
// (At, DoNonZero) follow gonum's convention and panic with these same sentinels.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached at the detection site with
// fmt.Errorf("<Op>(...): %w", ErrX); callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNotOwned indicates a write to a row outside the writing Part's ownership range.
	ErrNotOwned = errors.New("matrix: row not owned by this partition")

	// ErrInvalidRank indicates a Part was requested for a rank outside the layout.
	ErrInvalidRank = errors.New("matrix: rank out of range")

	// ErrNotAssembled signals a read (or assembly end) on a matrix that has not been
	// committed with AssemblyBegin/AssemblyEnd.
	ErrNotAssembled = errors.New("matrix: matrix is not assembled")

	// ErrAssembled signals a write, or a second AssemblyBegin, after assembly started.
	ErrAssembled = errors.New("matrix: matrix assembly already started")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. MulVecTo with len(x) != Cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured numeric policy (epsilon).
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
