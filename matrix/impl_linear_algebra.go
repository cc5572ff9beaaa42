// SPDX-License-Identifier: MIT
// Package matrix provides element-wise and product arithmetic on *Dense,
// plus transpose and row/column replacement. All kernels perform strict
// fail-fast validation and return fresh matrices; operands are never mutated.
//
// Purpose:
//   - Value-style arithmetic: each operator returns a new *Dense.
//   - Mixed scalar/matrix operations are explicit methods (Scale, DivScalar)
//     rather than operator dispatch.
//
// Notes:
//   - Dimension mismatch in Add/Sub/Mul is an error, never a panic.
//   - Equal treats a dimension mismatch as inequality, not as an error.

package matrix

import (
	"math"

	"github.com/katalvlaran/lvlalg/algebra"
)

// ZeroSum is the initial value of every accumulator in this package.
const ZeroSum = 0.0

// anyNil reports whether any operand is a nil *Dense.
func anyNil(ms ...*Dense) bool {
	for _, m := range ms {
		if m == nil {
			return true
		}
	}
	return false
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation and the flat loop.
// Complexity: O(r*c).
func addSub(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	if anyNil(a, b) {
		return nil, matrixErrorf(opTag, ErrNilMatrix)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	out := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for k := range a.data {
		out.data[k] = a.data[k] + sign*b.data[k]
	}
	return out, nil
}

// Add computes the element-wise sum m + b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(r*c).
func (m *Dense) Add(b *Dense) (*Dense, error) { return addSub(m, b, +1, opAdd) }

// Sub computes the element-wise difference m - b.
// Complexity: O(r*c).
func (m *Dense) Sub(b *Dense) (*Dense, error) { return addSub(m, b, -1, opSub) }

// Mul performs the matrix product m × b (m.Cols must equal b.Rows).
//
// Implementation:
//   - Stage 1: validate non-nil operands and inner dimension.
//   - Stage 2: allocate r×p result; i→k→j loop over flat slices.
//
// Determinism:
//   - Fixed loop order; summation order is k ascending per cell.
//
// Complexity: O(r*n*p).
func (m *Dense) Mul(b *Dense) (*Dense, error) {
	if anyNil(m, b) {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if err := ValidateMulShape(m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	r, n, p := m.r, m.c, b.c
	out := &Dense{r: r, c: p, data: make([]float64, r*p)}
	var i, j, k int
	var aik float64
	for i = 0; i < r; i++ {
		for k = 0; k < n; k++ {
			aik = m.data[i*n+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < p; j++ {
				out.data[i*p+j] += aik * b.data[k*p+j]
			}
		}
	}
	return out, nil
}

// Apply returns a new matrix with f applied to every cell.
// Complexity: O(r*c).
func (m *Dense) Apply(f func(float64) float64) *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for k, v := range m.data {
		out.data[k] = f(v)
	}
	return out
}

// Scale returns alpha·m. Scalars commute with float64 cells, so this also
// covers m·alpha.
func (m *Dense) Scale(alpha float64) *Dense {
	return m.Apply(func(v float64) float64 { return v * alpha })
}

// DivScalar returns m / alpha.
// Errors: algebra.ErrDivisionByZero when alpha == 0.
func (m *Dense) DivScalar(alpha float64) (*Dense, error) {
	if alpha == 0 {
		return nil, matrixErrorf(opDivScalar, algebra.ErrDivisionByZero)
	}
	return m.Apply(func(v float64) float64 { return v / alpha }), nil
}

// Equal reports exact element-wise equality. Different shapes are unequal.
func (m *Dense) Equal(b *Dense) bool {
	if m == nil || b == nil {
		return m == b
	}
	if m.r != b.r || m.c != b.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != b.data[k] {
			return false
		}
	}
	return true
}

// EqualApprox reports |m[i,j] - b[i,j]| ≤ tol for every cell.
// Different shapes are unequal.
func (m *Dense) EqualApprox(b *Dense, tol float64) bool {
	if m == nil || b == nil {
		return m == b
	}
	if m.r != b.r || m.c != b.c {
		return false
	}
	for k := range m.data {
		if math.Abs(m.data[k]-b.data[k]) > tol {
			return false
		}
	}
	return true
}

// Transpose returns a new c×r matrix with rows and columns swapped.
// data[i*cols + j] → out.data[j*rows + i].
// Complexity: O(r*c).
func (m *Dense) Transpose() *Dense {
	rows, cols := m.r, m.c
	out := &Dense{r: cols, c: rows, data: make([]float64, len(m.data))}
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			out.data[j*rows+i] = m.data[base+j]
		}
	}
	return out
}

// ReplaceColumn returns a copy of m with column col overwritten by values.
// Only the overlapping prefix min(Rows, len(values)) is replaced; the rest of
// the column keeps its old cells.
//
// Errors: ErrOutOfRange when col is outside [0, Cols).
// AI-Hints: Building block of SolveCramer.
func (m *Dense) ReplaceColumn(col int, values []float64) (*Dense, error) {
	if col < 0 || col >= m.c {
		return nil, matrixErrorf(opReplaceCol, ErrOutOfRange)
	}
	out := m.Clone()
	n := min(m.r, len(values))
	for i := 0; i < n; i++ {
		out.data[i*m.c+col] = values[i]
	}
	return out, nil
}

// ReplaceRow returns a copy of m with row overwritten by values (overlapping
// prefix only, as ReplaceColumn).
//
// Errors: ErrOutOfRange when row is outside [0, Rows).
func (m *Dense) ReplaceRow(row int, values []float64) (*Dense, error) {
	if row < 0 || row >= m.r {
		return nil, matrixErrorf(opReplaceRow, ErrOutOfRange)
	}
	out := m.Clone()
	copy(out.data[row*m.c:(row+1)*m.c], values)
	return out, nil
}
