// SPDX-License-Identifier: MIT

package eigen

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ghep/matrix"
)

// relativeResidual returns ‖A x − λ B x‖₂ / (|λ| ‖x‖₂) for x = xr + i·xi,
// with B = I when b is nil and ‖x‖₂ alone as denominator when λ = 0.
//
// With λ = α + iβ and x = u + iv:
//
//	Re r = A u − α B u + β B v
//	Im r = A v − α B v − β B u
func relativeResidual(a, b mat.Matrix, lambda complex128, xr, xi []float64) float64 {
	alpha, beta := real(lambda), imag(lambda)
	bu, bv := apply(b, xr), apply(b, xi)

	rr := apply(a, xr)
	floats.AddScaled(rr, -alpha, bu)
	floats.AddScaled(rr, beta, bv)
	ri := apply(a, xi)
	floats.AddScaled(ri, -alpha, bv)
	floats.AddScaled(ri, -beta, bu)

	num := math.Hypot(floats.Norm(rr, 2), floats.Norm(ri, 2))
	den := math.Hypot(floats.Norm(xr, 2), floats.Norm(xi, 2))
	if lambda != 0 {
		den *= cmplx.Abs(lambda)
	}
	if den == 0 {
		return math.Inf(1)
	}

	return num / den
}

// apply returns m·x as a new slice; a nil m is the identity.
func apply(m mat.Matrix, x []float64) []float64 {
	dst := make([]float64, len(x))
	if m == nil {
		copy(dst, x)
		return dst
	}
	if sp, ok := m.(*matrix.Sparse); ok && sp.MulVecTo(dst, x) == nil {
		return dst
	}
	mat.NewVecDense(len(dst), dst).MulVec(m, mat.NewVecDense(len(x), x))

	return dst
}
