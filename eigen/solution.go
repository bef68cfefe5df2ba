// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Eigenpair is one computed eigenvalue λ = Real + i·Imag with its eigenvector
// x = VecReal + i·VecImag and the relative residual error of the pair.
// VecImag is all zeros for real eigenvalues.
type Eigenpair struct {
	Real, Imag float64
	VecReal    *mat.VecDense
	VecImag    *mat.VecDense
	Error      float64
}

// Value returns λ as a complex number.
func (p Eigenpair) Value() complex128 { return complex(p.Real, p.Imag) }

// Solution is the outcome of Solver.Solve.
type Solution struct {
	// Problem is the resolved problem type (never ProblemAuto).
	Problem ProblemType
	// Iterations is the number of outer iterations the backend ran.
	Iterations int
	// Requested is the number of eigenpairs that were asked for (nev).
	Requested int

	pairs []Eigenpair
}

// Converged returns the number of eigenpairs whose error is within tolerance.
func (s *Solution) Converged() int { return len(s.pairs) }

// Eigenpair returns converged pair i, in selection order.
// Returns ErrIndex for i outside [0, Converged()).
func (s *Solution) Eigenpair(i int) (Eigenpair, error) {
	if i < 0 || i >= len(s.pairs) {
		return Eigenpair{}, fmt.Errorf("Solution.Eigenpair(%d) with %d converged: %w", i, len(s.pairs), ErrIndex)
	}

	return s.pairs[i], nil
}

// Eigenpairs returns the converged pairs in selection order. The slice is a
// copy; the vectors are shared.
func (s *Solution) Eigenpairs() []Eigenpair {
	out := make([]Eigenpair, len(s.pairs))
	copy(out, s.pairs)

	return out
}
