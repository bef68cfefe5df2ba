// SPDX-License-Identifier: MIT
package eigen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ghep/eigen"
)

func TestParseProblemType(t *testing.T) {
	t.Parallel()
	for in, want := range map[string]eigen.ProblemType{
		"hep": eigen.HEP, "GHEP": eigen.GHEP, " nhep ": eigen.NHEP, "auto": eigen.ProblemAuto, "": eigen.ProblemAuto,
	} {
		got, err := eigen.ParseProblemType(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got)
	}
	_, err := eigen.ParseProblemType("gnhep")
	require.ErrorIs(t, err, eigen.ErrProblemType)
	require.Equal(t, "ghep", eigen.GHEP.String())
	require.Equal(t, "ProblemType(9)", eigen.ProblemType(9).String())
}

func TestParseWhich(t *testing.T) {
	t.Parallel()
	for _, w := range []eigen.Which{eigen.LargestMagnitude, eigen.SmallestMagnitude, eigen.LargestReal, eigen.SmallestReal} {
		got, err := eigen.ParseWhich(w.String())
		require.NoError(t, err)
		require.Equal(t, w, got)
	}
	got, err := eigen.ParseWhich("Smallest-Real")
	require.NoError(t, err)
	require.Equal(t, eigen.SmallestReal, got)
	_, err = eigen.ParseWhich("target_magnitude")
	require.ErrorIs(t, err, eigen.ErrUnknownWhich)
	require.Equal(t, "Which(-1)", eigen.Which(-1).String())
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { eigen.WithNev(0) })
	require.Panics(t, func() { eigen.WithTolerance(0) })
	require.Panics(t, func() { eigen.WithTolerance(math.NaN()) })
	require.Panics(t, func() { eigen.WithTolerance(math.Inf(1)) })
	require.Panics(t, func() { eigen.WithWhich(eigen.Which(7)) })
	require.Panics(t, func() { eigen.WithSymmetryEpsilon(-1) })
	require.NotPanics(t, func() { eigen.WithTolerance(1e-3) })
}

func TestOrder(t *testing.T) {
	t.Parallel()
	values := []complex128{1, -3, complex(0, -2), complex(0, 2), 0.5}

	require.Equal(t, []int{1, 3, 2, 0, 4}, eigen.Order(values, eigen.LargestMagnitude)) // +2i before -2i
	require.Equal(t, []int{4, 0, 3, 2, 1}, eigen.Order(values, eigen.SmallestMagnitude))
	require.Equal(t, []int{0, 4, 3, 2, 1}, eigen.Order(values, eigen.LargestReal))
	require.Equal(t, []int{1, 3, 2, 4, 0}, eigen.Order(values, eigen.SmallestReal))
}

func TestRelativeResidual(t *testing.T) {
	t.Parallel()
	d := mat.NewDiagDense(2, []float64{3, 0})

	require.Zero(t, eigen.RelativeResidual(d, nil, 3, []float64{1, 0}, []float64{0, 0}))
	require.Zero(t, eigen.RelativeResidual(d, nil, 0, []float64{0, 2}, []float64{0, 0})) // λ = 0 uses ‖x‖ alone

	// wrong λ: r = (3-1)·x, |λ|·‖x‖ = 1
	require.InDelta(t, 2, eigen.RelativeResidual(d, nil, 1, []float64{1, 0}, []float64{0, 0}), 1e-15)

	rot := mat.NewDense(2, 2, []float64{0, -1, 1, 0})
	s := 1 / math.Sqrt2
	// rot·(1, -i)/√2 = i·(1, -i)/√2
	res := eigen.RelativeResidual(rot, nil, complex(0, 1), []float64{s, 0}, []float64{0, -s})
	require.InDelta(t, 0, res, 1e-15)
	require.True(t, math.IsInf(eigen.RelativeResidual(d, nil, 1, []float64{0, 0}, []float64{0, 0}), 1))
}
