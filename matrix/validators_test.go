// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ghep/matrix"
)

func TestValidators(t *testing.T) {
	t.Parallel()
	var nilSparse *matrix.Sparse
	sq := mat.NewDense(2, 2, nil)
	rect := mat.NewDense(2, 3, nil)

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"nil interface", matrix.ValidateNotNil(nil), matrix.ErrNilMatrix},
		{"typed nil sparse", matrix.ValidateNotNil(nilSparse), matrix.ErrNilMatrix},
		{"square ok", matrix.ValidateSquare(sq), nil},
		{"non-square", matrix.ValidateSquare(rect), matrix.ErrNonSquare},
		{"same shape ok", matrix.ValidateSameShape(sq, mat.NewDense(2, 2, nil)), nil},
		{"shape mismatch", matrix.ValidateSameShape(sq, rect), matrix.ErrDimensionMismatch},
		{"shape nil", matrix.ValidateSameShape(sq, nil), matrix.ErrNilMatrix},
		{"vec ok", matrix.ValidateVecLen(make([]float64, 2), 2), nil},
		{"vec short", matrix.ValidateVecLen(nil, 2), matrix.ErrDimensionMismatch},
		{"symmetric dense", matrix.ValidateSymmetric(mat.NewSymDense(2, nil), 0), nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.wantErr == nil {
				require.NoError(t, tc.err)
				return
			}
			require.ErrorIs(t, tc.err, tc.wantErr)
		})
	}
}

func TestValidateSymmetric_UnassembledSparse(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewSparse(2, 2)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSymmetric(m, 0), matrix.ErrNotAssembled)
}

func TestValidateSymmetric_MissingMirror(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewSparse(3, 3)
	require.NoError(t, err)
	require.NoError(t, m.SetValue(0, 2, 1)) // no (2,0) counterpart
	require.NoError(t, m.Assemble())
	require.ErrorIs(t, matrix.ValidateSymmetric(m, matrix.DefaultEpsilon), matrix.ErrAsymmetry)
}
