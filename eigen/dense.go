// SPDX-License-Identifier: MIT
// Package eigen - dense LAPACK backends (gonum mat).
//
// Each backend returns the full spectrum with eigenvectors stored as columns.

package eigen

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/ghep/matrix"
)

// spectrum holds all eigenvalues and their eigenvectors (column j ↔ values[j]).
// vecIm is nil when every eigenvector is real.
type spectrum struct {
	values       []complex128
	vecRe, vecIm *mat.Dense
}

// vector returns fresh copies of the real and imaginary parts of column j.
func (sp spectrum) vector(j int) (re, im []float64) {
	re = mat.Col(nil, j, sp.vecRe)
	if sp.vecIm == nil {
		return re, make([]float64, len(re))
	}

	return re, mat.Col(nil, j, sp.vecIm)
}

func solveHEP(a mat.Matrix, eps float64) (spectrum, error) {
	sym, err := symmetricOperator("A", a, eps)
	if err != nil {
		return spectrum{}, err
	}

	return eigenSym(sym)
}

// solveGHEP reduces A x = λ B x to C y = λ y with B = UᵀU, C = U⁻ᵀ A U⁻¹, x = U⁻¹ y.
func solveGHEP(a, b mat.Matrix, eps float64) (spectrum, error) {
	symA, err := symmetricOperator("A", a, eps)
	if err != nil {
		return spectrum{}, err
	}
	symB, err := symmetricOperator("B", b, eps)
	if err != nil {
		return spectrum{}, err
	}

	var chol mat.Cholesky
	if !chol.Factorize(symB) {
		return spectrum{}, fmt.Errorf("Cholesky(B): %w", ErrNotPositiveDefinite)
	}
	var u mat.TriDense
	chol.UTo(&u)

	var x, c mat.Dense
	if err = x.Solve(u.T(), symA); tolerateCondition("U⁻ᵀA", err) != nil {
		return spectrum{}, fmt.Errorf("U⁻ᵀA: %v: %w", err, ErrFactorization)
	}
	if err = c.Solve(u.T(), x.T()); tolerateCondition("U⁻ᵀAU⁻¹", err) != nil {
		return spectrum{}, fmt.Errorf("U⁻ᵀAU⁻¹: %v: %w", err, ErrFactorization)
	}
	n := symA.SymmetricDim()
	symC := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			symC.SetSym(i, j, 0.5*(c.At(i, j)+c.At(j, i))) // round-off asymmetry
		}
	}

	sp, err := eigenSym(symC)
	if err != nil {
		return spectrum{}, err
	}
	var vecs mat.Dense
	if err = vecs.Solve(&u, sp.vecRe); tolerateCondition("U⁻¹Y", err) != nil {
		return spectrum{}, fmt.Errorf("U⁻¹Y: %v: %w", err, ErrFactorization)
	}
	sp.vecRe = &vecs

	return sp, nil
}

func solveNHEP(a mat.Matrix) (spectrum, error) {
	src := a
	if sp, ok := a.(*matrix.Sparse); ok {
		d, err := sp.ToDense()
		if err != nil {
			return spectrum{}, fmt.Errorf("A: %w", err)
		}
		src = d
	}

	var e mat.Eigen
	if !e.Factorize(src, mat.EigenRight) {
		return spectrum{}, fmt.Errorf("Eigen(A): %w", ErrFactorization)
	}
	values := e.Values(nil)
	var cv mat.CDense
	e.VectorsTo(&cv)

	n := len(values)
	re, im := mat.NewDense(n, n, nil), mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			z := cv.At(i, j)
			re.Set(i, j, real(z))
			im.Set(i, j, imag(z))
		}
	}

	return spectrum{values: values, vecRe: re, vecIm: im}, nil
}

func eigenSym(sym mat.Symmetric) (spectrum, error) {
	var es mat.EigenSym
	if !es.Factorize(sym, true) {
		return spectrum{}, fmt.Errorf("EigenSym: %w", ErrFactorization)
	}
	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	sp := spectrum{values: make([]complex128, len(vals)), vecRe: &vecs}
	for i, v := range vals {
		sp.values[i] = complex(v, 0)
	}

	return sp, nil
}

// symmetricOperator copies op into a SymDense, reporting asymmetry as ErrNotSymmetric.
func symmetricOperator(name string, op mat.Matrix, eps float64) (*mat.SymDense, error) {
	sym, err := matrix.SymDenseOf(op, eps)
	if err != nil {
		if errors.Is(err, matrix.ErrAsymmetry) {
			return nil, fmt.Errorf("%s: %w: %w", name, ErrNotSymmetric, err)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return sym, nil
}

// tolerateCondition logs gonum's ill-conditioning report and clears it;
// any other error is returned unchanged.
func tolerateCondition(op string, err error) error {
	var cond mat.Condition
	if errors.As(err, &cond) {
		klog.InfoS("Ill-conditioned triangular solve", "op", op, "condition", float64(cond))
		return nil
	}

	return err
}
