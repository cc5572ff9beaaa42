// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the cofactor kernels.
//   • Keep fixtures integer-valued where possible so determinants are exact.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance for float comparisons that are not exact.
const tol = 1e-9

// scenario5 is a 5×5 integer matrix with det = 64; its inverse has dyadic
// entries, so every step is exact in float64.
var scenario5 = [][]float64{
	{2, 1, 1, 0, 4},
	{6, 3, 0, 0, 4},
	{6, 3, 1, 3, 4},
	{2, 1, 0, 1, 4},
	{4, 3, 0, 2, 3},
}

// scenario5Inverse is scenario5⁻¹ computed with rational arithmetic.
var scenario5Inverse = [][]float64{
	{-19.0 / 64, 17.0 / 64, 19.0 / 64, 7.0 / 64, -0.5},
	{15.0 / 32, -5.0 / 32, -15.0 / 32, -19.0 / 32, 1},
	{0.75, -0.25, 0.25, -0.75, 0},
	{-0.25, -0.25, 0.25, 0.25, 0},
	{3.0 / 32, -1.0 / 32, -3.0 / 32, 9.0 / 32, 0},
}

// MustDense ALLOCATES an r×c zero *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	return m
}

// MustFrom builds a *Dense from rectangular rows or fails the test.
//
// Notes:
//   - The shape is taken from the seed; rows must be non-empty and equal length.
func MustFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	require.NotEmpty(t, rows)
	m, err := matrix.NewDenseFrom(len(rows), len(rows[0]), rows)
	require.NoError(t, err)
	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)
	return m
}

// requireCells asserts m equals want cell-by-cell within tol.
func requireCells(t *testing.T, want [][]float64, m *matrix.Dense, eps float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows())
	require.Equal(t, len(want[0]), m.Cols())
	for i := range want {
		for j := range want[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.InDeltaf(t, want[i][j], v, eps, "cell (%d,%d)", i, j)
		}
	}
}
