// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_tridiagonal.go - Tridiagonal(diag, off) and the two model operators.
//
// Contract:
//   - For every owned row i: (i, i-1) = off when i > 0, (i, i) = diag,
//     (i, i+1) = off when i < n-1; scaled by cfg.scale, diagonal shifted by cfg.shift.
//   - Entries are written in column order i-1, i, i+1.
//   - Non-finite coefficients → ErrBadCoefficient.
//
// Complexity:
//   - Time: O(rows owned) per partition. Space: 3 staged entries per row.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ghep/matrix"
)

const (
	methodTridiagonal = "Tridiagonal"

	stiffnessDiag = 2.0
	stiffnessOff  = -1.0
	massDiag      = 2.0 / 3.0
	massOff       = 1.0 / 6.0
)

// Tridiagonal returns a Constructor for the symmetric tridiagonal matrix with
// constant diagonal diag and constant sub/super-diagonal off.
func Tridiagonal(diag, off float64) Constructor {
	return func(p *matrix.Part, cfg builderConfig) error {
		if !isFinite(diag) || !isFinite(off) {
			return builderErrorf(methodTridiagonal, ErrBadCoefficient, "diag=%v off=%v", diag, off)
		}
		n, _ := p.Dims()
		d, o := cfg.diagonal(diag), cfg.offDiagonal(off)

		lo, hi := p.OwnershipRange()
		for i := lo; i < hi; i++ {
			if i > 0 {
				if err := p.Set(i, i-1, o); err != nil {
					return fmt.Errorf("%s: %w", methodTridiagonal, err)
				}
			}
			if err := p.Set(i, i, d); err != nil {
				return fmt.Errorf("%s: %w", methodTridiagonal, err)
			}
			if i < n-1 {
				if err := p.Set(i, i+1, o); err != nil {
					return fmt.Errorf("%s: %w", methodTridiagonal, err)
				}
			}
		}

		return nil
	}
}

// Stiffness is the 1-D Laplacian stencil: diagonal 2, off-diagonals -1.
func Stiffness() Constructor { return Tridiagonal(stiffnessDiag, stiffnessOff) }

// Mass is the linear-element mass stencil: diagonal 2/3, off-diagonals 1/6.
func Mass() Constructor { return Tridiagonal(massDiag, massOff) }

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
