// SPDX-License-Identifier: MIT
// Package eigen - Solver: operator setup, problem-type resolution, Solve.
//
// Lifecycle:
//   - NewSolver(opts...) → SetOperators(A, B) → [SetProblemType] → Solve.
//   - A Solver may be re-used: SetOperators replaces the pencil, Solve runs again.
//
// Concurrency:
//   - A Solver is not safe for concurrent mutation; Solutions are read-only.

package eigen

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/ghep/matrix"
)

// denseIterations is what the direct dense backends report as iteration count.
const denseIterations = 1

// Solver computes selected eigenpairs of A or of the pencil (A, B).
type Solver struct {
	opts    Options
	problem ProblemType
	a, b    mat.Matrix
}

// NewSolver returns a Solver configured by opts with ProblemAuto.
func NewSolver(opts ...Option) *Solver {
	return &Solver{opts: gatherOptions(opts...)}
}

// SetOperators installs A and, for a generalized problem, B (nil otherwise).
//
// Errors:
//   - ErrNoOperator when A is nil or an operand is an unassembled *matrix.Sparse.
//   - ErrDimensionMismatch when A or B is not square, or their sizes differ.
func (s *Solver) SetOperators(a, b mat.Matrix) error {
	if err := matrix.ValidateNotNil(a); err != nil {
		return fmt.Errorf("Solver.SetOperators: A: %w", ErrNoOperator)
	}
	if matrix.ValidateNotNil(b) != nil {
		b = nil // typed nil counts as absent
	}
	for _, op := range []struct {
		name string
		m    mat.Matrix
	}{{"A", a}, {"B", b}} {
		if op.m == nil {
			continue
		}
		if sp, ok := op.m.(*matrix.Sparse); ok && !sp.Assembled() {
			return fmt.Errorf("Solver.SetOperators: %s: %w: %w", op.name, ErrNoOperator, matrix.ErrNotAssembled)
		}
		if err := matrix.ValidateSquare(op.m); err != nil {
			return fmt.Errorf("Solver.SetOperators: %s: %w: %w", op.name, ErrDimensionMismatch, err)
		}
	}
	if b != nil {
		if err := matrix.ValidateSameShape(a, b); err != nil {
			return fmt.Errorf("Solver.SetOperators: %w: %w", ErrDimensionMismatch, err)
		}
	}
	s.a, s.b = a, b

	return nil
}

// SetProblemType selects the formulation. Returns ErrProblemType for an undeclared value.
func (s *Solver) SetProblemType(pt ProblemType) error {
	if !pt.valid() {
		return fmt.Errorf("Solver.SetProblemType(%v): %w", pt, ErrProblemType)
	}
	s.problem = pt

	return nil
}

// ProblemType returns the configured (possibly unresolved) problem type.
func (s *Solver) ProblemType() ProblemType { return s.problem }

// Solve computes the spectrum, selects the first min(nev, n) eigenvalues in
// Which order, evaluates their residuals against the installed operators and
// keeps those within tolerance.
//
// Errors:
//   - ErrNoOperator, ErrProblemType from the setup.
//   - ErrNotSymmetric, ErrNotPositiveDefinite, ErrFactorization from the backends.
//
// Complexity: O(n³) time, O(n²) space.
func (s *Solver) Solve() (*Solution, error) {
	pt, err := s.resolveProblem()
	if err != nil {
		return nil, fmt.Errorf("Solver.Solve: %w", err)
	}

	var sp spectrum
	switch pt {
	case HEP:
		sp, err = solveHEP(s.a, s.opts.symEps)
	case GHEP:
		sp, err = solveGHEP(s.a, s.b, s.opts.symEps)
	default:
		sp, err = solveNHEP(s.a)
	}
	if err != nil {
		return nil, fmt.Errorf("Solver.Solve(%v): %w", pt, err)
	}

	candidates := s.pick(sp)
	sol := &Solution{Problem: pt, Iterations: denseIterations, Requested: s.opts.nev}
	for _, p := range candidates {
		if p.Error <= s.opts.tol {
			sol.pairs = append(sol.pairs, p)
		}
	}
	n, _ := s.a.Dims()
	klog.V(2).InfoS("Eigenproblem solved", "problem", pt, "n", n, "which", s.opts.which,
		"nev", s.opts.nev, "converged", sol.Converged())

	return sol, nil
}

func (s *Solver) resolveProblem() (ProblemType, error) {
	if s.a == nil {
		return 0, fmt.Errorf("A: %w", ErrNoOperator)
	}
	switch s.problem {
	case ProblemAuto:
		if s.b == nil {
			return HEP, nil
		}
		return GHEP, nil
	case GHEP:
		if s.b == nil {
			return 0, fmt.Errorf("%v needs B: %w", GHEP, ErrNoOperator)
		}
	case HEP, NHEP:
		if s.b != nil {
			return 0, fmt.Errorf("%v with a B operator: %w", s.problem, ErrProblemType)
		}
	}

	return s.problem, nil
}

// pick orders the spectrum, keeps the first min(nev, n) values and builds
// their eigenpairs.
func (s *Solver) pick(sp spectrum) []Eigenpair {
	idx := order(sp.values, s.opts.which)
	k := min(s.opts.nev, len(idx))
	pairs := make([]Eigenpair, 0, k)
	for _, j := range idx[:k] {
		xr, xi := sp.vector(j)
		lambda := sp.values[j]
		pairs = append(pairs, Eigenpair{
			Real:    real(lambda),
			Imag:    imag(lambda),
			VecReal: mat.NewVecDense(len(xr), xr),
			VecImag: mat.NewVecDense(len(xi), xi),
			Error:   relativeResidual(s.a, s.b, lambda, xr, xi),
		})
	}

	return pairs
}
