// SPDX-License-Identifier: MIT
// Package builder_test verifies the tridiagonal operators for every size and
// partition count, and the option/role plumbing around Build.
package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ghep/builder"
	"github.com/katalvlaran/ghep/matrix"
)

// requireTridiagonal checks every entry of m against the (diag, off) stencil.
func requireTridiagonal(t *testing.T, m *matrix.Sparse, diag, off float64) {
	t.Helper()
	n, c := m.Dims()
	require.Equal(t, n, c)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			switch {
			case i == j:
				want = diag
			case i-j == 1 || j-i == 1:
				want = off
			}
			require.Equal(t, want, m.At(i, j), "(%d,%d)", i, j)
		}
	}
	require.Equal(t, 3*n-2, m.NNZ()) // n diagonal + 2(n-1) off-diagonal
}

func TestStiffnessAndMass_AllSizesAndRanks(t *testing.T) {
	t.Parallel()
	for _, n := range []int{1, 2, 3, 7, 30} {
		for _, ranks := range []int{1, 2, 4, 9} {
			a, err := builder.BuildRole(n, builder.RoleStiffness, matrix.WithRanks(ranks))
			require.NoError(t, err)
			requireTridiagonal(t, a, 2.0, -1.0)

			b, err := builder.BuildRole(n, builder.RoleMass, matrix.WithRanks(ranks))
			require.NoError(t, err)
			requireTridiagonal(t, b, 2.0/3.0, 1.0/6.0)
			require.NoError(t, matrix.ValidateSymmetric(b, 0)) // exact symmetry
		}
	}
}

func TestBuild_InvalidDimension(t *testing.T) {
	t.Parallel()
	for _, n := range []int{0, -3} {
		_, err := builder.Build(n, nil, nil, builder.Stiffness())
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestBuild_NilConstructor(t *testing.T) {
	t.Parallel()
	_, err := builder.Build(3, nil, nil, builder.Stiffness(), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuild_ScaleAndShift(t *testing.T) {
	t.Parallel()
	m, err := builder.Build(4, []matrix.Option{matrix.WithRanks(2)},
		[]builder.BuilderOption{builder.WithScale(2), builder.WithShift(0.5)},
		builder.Stiffness())
	require.NoError(t, err)
	requireTridiagonal(t, m, 4.5, -2) // 2·2+0.5, 2·(-1)
}

func TestBuild_AddValuesComposesConstructors(t *testing.T) {
	t.Parallel()
	m, err := builder.Build(5, []matrix.Option{matrix.WithInsertMode(matrix.AddValues), matrix.WithRanks(3)}, nil,
		builder.Stiffness(), builder.Mass())
	require.NoError(t, err)
	requireTridiagonal(t, m, 2+2.0/3.0, -1+1.0/6.0) // A + B
}

func TestTridiagonal_BadCoefficient(t *testing.T) {
	t.Parallel()
	_, err := builder.Build(3, nil, nil, builder.Tridiagonal(math.NaN(), 1))
	require.ErrorIs(t, err, builder.ErrBadCoefficient)
	_, err = builder.Build(3, nil, nil, builder.Tridiagonal(1, math.Inf(1)))
	require.ErrorIs(t, err, builder.ErrBadCoefficient)
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { builder.WithScale(0) })
	require.Panics(t, func() { builder.WithScale(math.Inf(-1)) })
	require.Panics(t, func() { builder.WithShift(math.NaN()) })
	require.NotPanics(t, func() { builder.WithShift(-3) })
}

func TestRole(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want builder.Role
	}{
		{"stiffness", builder.RoleStiffness},
		{"A", builder.RoleStiffness},
		{" Mass ", builder.RoleMass},
		{"b", builder.RoleMass},
	}
	for _, tc := range tests {
		got, err := builder.ParseRole(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got)
	}

	_, err := builder.ParseRole("damping")
	require.ErrorIs(t, err, builder.ErrUnknownRole)
	_, err = builder.ForRole(builder.Role(7))
	require.ErrorIs(t, err, builder.ErrUnknownRole)
	_, err = builder.BuildRole(3, builder.Role(7))
	require.ErrorIs(t, err, builder.ErrUnknownRole)

	require.Equal(t, "stiffness", builder.RoleStiffness.String())
	require.Equal(t, "mass", builder.RoleMass.String())
	require.Equal(t, "Role(7)", builder.Role(7).String())
}
