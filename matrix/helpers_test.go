// SPDX-License-Identifier: MIT
// Package matrix_test contains shared fixtures for the matrix tests.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ghep/matrix"
)

// tridiag builds the assembled n×n tridiagonal (lower, diag, upper) through SetValue.
func tridiag(t *testing.T, n int, lower, diag, upper float64, opts ...matrix.Option) *matrix.Sparse {
	t.Helper()
	m, err := matrix.NewSparse(n, n, opts...)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		if i > 0 {
			require.NoError(t, m.SetValue(i, i-1, lower))
		}
		require.NoError(t, m.SetValue(i, i, diag))
		if i < n-1 {
			require.NoError(t, m.SetValue(i, i+1, upper))
		}
	}
	require.NoError(t, m.Assemble())

	return m
}
