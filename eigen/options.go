// SPDX-License-Identifier: MIT
// Package eigen: functional options of the Solver.
//
// Defaults follow the EPS object: one eigenpair, tolerance 1e-8, largest
// magnitude first. WithX constructors panic on nonsensical values.

package eigen

import (
	"math"

	"github.com/katalvlaran/ghep/matrix"
)

const (
	// DefaultNev is the number of requested eigenpairs.
	DefaultNev = 1
	// DefaultTolerance bounds the relative residual of a converged pair.
	DefaultTolerance = 1e-8
	// DefaultWhich is the default spectrum selection.
	DefaultWhich = LargestMagnitude
	// DefaultSymmetryEpsilon is the absolute tolerance of the symmetry check.
	DefaultSymmetryEpsilon = matrix.DefaultEpsilon
)

// Option mutates Solver options.
type Option func(*Options)

// Options is the resolved solver configuration.
type Options struct {
	nev    int
	tol    float64
	which  Which
	symEps float64
}

// WithNev sets the number of requested eigenpairs. Panics when k < 1.
func WithNev(k int) Option {
	if k < 1 {
		panic("eigen: WithNev: k must be >= 1")
	}

	return func(o *Options) { o.nev = k }
}

// WithTolerance sets the convergence tolerance on the relative residual.
// Panics unless tol is finite and positive.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic("eigen: WithTolerance: tol must be finite and > 0")
	}

	return func(o *Options) { o.tol = tol }
}

// WithWhich selects the ordering of the returned eigenvalues. Panics on an unknown value.
func WithWhich(w Which) Option {
	if !w.valid() {
		panic("eigen: WithWhich: unknown selection")
	}

	return func(o *Options) { o.which = w }
}

// WithSymmetryEpsilon sets the tolerance used when checking A and B for symmetry.
// Panics when eps is negative or not finite.
func WithSymmetryEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("eigen: WithSymmetryEpsilon: eps must be finite and >= 0")
	}

	return func(o *Options) { o.symEps = eps }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		nev:    DefaultNev,
		tol:    DefaultTolerance,
		which:  DefaultWhich,
		symEps: DefaultSymmetryEpsilon,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
