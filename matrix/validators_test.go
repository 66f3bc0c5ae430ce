// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sadkowskimaciek/BibliotekaNumeryczna/matrix"
)

func TestValidateSquare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		m       matrix.Matrix
		wantErr error
	}{
		{"square 3x3", MustDense(t, 3, 3), nil},
		{"square 1x1", MustDense(t, 1, 1), nil},
		{"wide 2x3", MustDense(t, 2, 3), matrix.ErrDimensionMismatch},
		{"tall 3x2", MustDense(t, 3, 2), matrix.ErrDimensionMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestValidateNotNil(t *testing.T) {
	t.Parallel()
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

func TestValidateVecLen(t *testing.T) {
	t.Parallel()
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
}
