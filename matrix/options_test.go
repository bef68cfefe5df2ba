// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ghep/matrix"
)

func TestOptions_Panics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { matrix.WithRanks(0) })
	require.Panics(t, func() { matrix.WithInsertMode(matrix.InsertMode(9)) })
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
}

func TestInsertMode_String(t *testing.T) {
	t.Parallel()
	require.Equal(t, "insert", matrix.InsertValues.String())
	require.Equal(t, "add", matrix.AddValues.String())
	require.Equal(t, "unknown", matrix.InsertMode(-1).String())
}

func TestLayout(t *testing.T) {
	t.Parallel()
	_, err := matrix.NewLayout(0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewLayout(3, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidRank)

	l, err := matrix.NewLayout(10, 3)
	require.NoError(t, err)
	require.Equal(t, 10, l.N())
	require.Equal(t, 3, l.Ranks())

	lo, hi, err := l.OwnershipRange(1)
	require.NoError(t, err)
	require.Equal(t, [2]int{4, 7}, [2]int{lo, hi})

	for i := 0; i < l.N(); i++ {
		rank, err := l.Owner(i)
		require.NoError(t, err)
		lo, hi, _ := l.OwnershipRange(rank)
		require.True(t, lo <= i && i < hi, "row %d owner %d", i, rank) // Owner agrees with OwnershipRange
	}
	_, err = l.Owner(10)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
