// SPDX-License-Identifier: MIT
// Package eigen: sentinel error set. Every error returned by the package wraps
// one of these (errors.Is); gonum's mat.Condition is logged, never returned.

package eigen

import "errors"

var (
	// ErrNoOperator indicates that Solve was called without the operators the
	// problem type needs (A always, B for GHEP).
	ErrNoOperator = errors.New("eigen: operator not set")

	// ErrDimensionMismatch indicates non-square operators or A and B of different sizes.
	ErrDimensionMismatch = errors.New("eigen: operator dimension mismatch")

	// ErrNotSymmetric indicates a Hermitian problem type with an asymmetric operator.
	ErrNotSymmetric = errors.New("eigen: operator is not symmetric")

	// ErrNotPositiveDefinite indicates a GHEP whose B has no Cholesky factorization.
	ErrNotPositiveDefinite = errors.New("eigen: B is not positive definite")

	// ErrFactorization indicates that the underlying LAPACK routine did not converge.
	ErrFactorization = errors.New("eigen: factorization failed")

	// ErrProblemType indicates an unknown problem type or one inconsistent with the operators.
	ErrProblemType = errors.New("eigen: invalid problem type")

	// ErrUnknownWhich indicates an unrecognised eigenvalue selection.
	ErrUnknownWhich = errors.New("eigen: invalid eigenvalue selection")

	// ErrIndex indicates an eigenpair index outside [0, Converged()).
	ErrIndex = errors.New("eigen: eigenpair index out of range")
)
