// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateDims(t *testing.T) {
	require.NoError(t, matrix.ValidateDims(1, 1))
	require.ErrorIs(t, matrix.ValidateDims(0, 3), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.ValidateDims(3, -1), matrix.ErrInvalidDimensions)
}

func TestValidateShapes(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 3, 2)

	require.NoError(t, matrix.ValidateSameShape(a, a))
	require.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateMulShape(a, b))
	require.ErrorIs(t, matrix.ValidateMulShape(a, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSquare(a), matrix.ErrNonSquare)
	require.NoError(t, matrix.ValidateSquare(MustDense(t, 4, 4)))
}

func TestValidateIndex(t *testing.T) {
	m := MustDense(t, 2, 2)
	require.NoError(t, matrix.ValidateIndex(m, 1, 1))
	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		require.ErrorIs(t, matrix.ValidateIndex(m, ij[0], ij[1]), matrix.ErrOutOfRange, "index %v", ij)
	}
}

func TestValidateMinorShape(t *testing.T) {
	require.NoError(t, matrix.ValidateMinorShape(MustDense(t, 2, 3), 1, 2))
	require.ErrorIs(t, matrix.ValidateMinorShape(MustDense(t, 1, 3), 0, 0), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.ValidateMinorShape(MustDense(t, 3, 3), 3, 0), matrix.ErrOutOfRange)
}

func TestValidateVecLen(t *testing.T) {
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}
