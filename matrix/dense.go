// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Enforce the shape invariant at construction: every row has exactly Cols() cells.
//
// AI-Hints:
//   - Arithmetic returns fresh matrices; only Set and Correct mutate in place.
//   - Use NewDenseFrom to seed from [][]float64; short seeds are padded with zero rows.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).
package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable via errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
//   - r,c hold dimensions (height, width), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Dense exclusively owns its buffer; no two matrices alias storage.
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

var (
	_ Shape        = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if err := ValidateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom creates an r×c matrix seeded with rows.
//
// Implementation:
//   - Stage 1: validate dimensions.
//   - Stage 2: validate seed fit: len(seed) ≤ rows and every seed row has
//     exactly cols entries. On violation return ErrMalformedSeed, or the zero
//     matrix when WithZeroFallback() is supplied.
//   - Stage 3: copy seed rows; missing trailing rows stay zero (padding).
//
// Behavior highlights:
//   - The seed is copied; later mutation of seed does not affect the result.
//   - An empty seed yields the zero matrix.
//
// Complexity: O(r*c).
func NewDenseFrom(rows, cols int, seed [][]float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	if err = checkSeed(rows, cols, seed); err != nil {
		if gatherOptions(opts...).zeroFallback {
			return m, nil
		}
		return nil, matrixErrorf(opNew, err)
	}

	for i, row := range seed {
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

// checkSeed validates that seed fits into rows×cols without truncation.
func checkSeed[T any](rows, cols int, seed [][]T) error {
	if len(seed) > rows {
		return fmt.Errorf("%d seed rows for height %d: %w", len(seed), rows, ErrMalformedSeed)
	}
	for i, row := range seed {
		if len(row) != cols {
			return fmt.Errorf("seed row %d has %d cells for width %d: %w", i, len(row), cols, ErrMalformedSeed)
		}
	}
	return nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}
	return m, nil
}

// Rows returns the number of rows (height).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns (width).
func (m *Dense) Cols() int { return m.c }

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	if err := ValidateIndex(m, row, col); err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}
	return m.data[row*m.c+col], nil
}

// Set assigns v at (row, col).
// Errors: ErrOutOfRange.
func (m *Dense) Set(row, col int, v float64) error {
	if err := ValidateIndex(m, row, col); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[row*m.c+col] = v
	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])
	return out, nil
}

// Data returns a deep copy of the grid as rows.
// Complexity: O(r*c).
func (m *Dense) Data() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}
	return out
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Dense{r: m.r, c: m.c, data: data}
}

// String prints each row as "[a, b, c]" followed by a newline.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', -1, 64))
		}
		sb.WriteString(_fmtRowClose)
	}
	return sb.String()
}
