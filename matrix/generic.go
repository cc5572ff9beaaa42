// SPDX-License-Identifier: MIT

// Package matrix - Generic storage over any algebra.Ring element.
//
// Purpose:
//   - Same shape invariants and row-major layout as Dense, with cells of type T.
//   - Identities come from T itself (Zero/One), never from float literals, so
//     complex, quaternion, integer and float matrices share one engine.
//
// Constructors:
//   - NewGeneric fills cells with T's Default() (see algebra.Defaulter).
//   - NewGenericZero fills cells with T's additive identity.
//     The two differ for complexnum.Complex (default i) and
//     quaternion.Quaternion (default i+j+k).
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlalg/algebra"
)

// genericErrorf mirrors denseErrorf for Generic[T].
func genericErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Generic.%s(%d,%d): %w", method, row, col, err)
}

// Generic is a row-major matrix whose cells are ring elements.
// A Generic exclusively owns its buffer; no two matrices alias storage.
type Generic[T algebra.Ring[T]] struct {
	r, c int
	data []T
}

func newGenericFilled[T algebra.Ring[T]](rows, cols int, fill T) (*Generic[T], error) {
	if err := ValidateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	data := make([]T, rows*cols)
	for k := range data {
		data[k] = fill
	}
	return &Generic[T]{r: rows, c: cols, data: data}, nil
}

// NewGeneric creates a rows×cols matrix filled with T's default value.
// Errors: ErrInvalidDimensions.
func NewGeneric[T algebra.Ring[T]](rows, cols int) (*Generic[T], error) {
	return newGenericFilled(rows, cols, algebra.DefaultOf[T]())
}

// NewGenericZero creates a rows×cols matrix filled with T's additive identity.
// Errors: ErrInvalidDimensions.
func NewGenericZero[T algebra.Ring[T]](rows, cols int) (*Generic[T], error) {
	return newGenericFilled(rows, cols, algebra.ZeroOf[T]())
}

// NewGenericIdentity returns the n×n identity over T.
func NewGenericIdentity[T algebra.Ring[T]](n int) (*Generic[T], error) {
	m, err := NewGenericZero[T](n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	one := algebra.OneOf[T]()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}
	return m, nil
}

// NewGenericFrom builds a matrix from rectangular seed rows (copied).
// Errors: ErrInvalidDimensions for an empty seed, ErrMalformedSeed for ragged rows.
func NewGenericFrom[T algebra.Ring[T]](seed [][]T) (*Generic[T], error) {
	if len(seed) == 0 {
		return nil, matrixErrorf(opNew, ErrInvalidDimensions)
	}
	rows, cols := len(seed), len(seed[0])
	if err := ValidateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	if err := checkSeed(rows, cols, seed); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	m := &Generic[T]{r: rows, c: cols, data: make([]T, rows*cols)}
	for i, row := range seed {
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Generic[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Generic[T]) Cols() int { return m.c }

// At returns the cell at (row, col). Errors: ErrOutOfRange.
func (m *Generic[T]) At(row, col int) (T, error) {
	if err := ValidateIndex(m, row, col); err != nil {
		var zero T
		return zero, genericErrorf(ctxAt, row, col, err)
	}
	return m.data[row*m.c+col], nil
}

// Set assigns v at (row, col). Errors: ErrOutOfRange.
func (m *Generic[T]) Set(row, col int, v T) error {
	if err := ValidateIndex(m, row, col); err != nil {
		return genericErrorf(ctxSet, row, col, err)
	}
	m.data[row*m.c+col] = v
	return nil
}

// Data returns a copy of the grid as rows.
func (m *Generic[T]) Data() [][]T {
	out := make([][]T, m.r)
	for i := range out {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}
	return out
}

// Clone returns a deep copy. Cells are values, so copying the slice suffices.
func (m *Generic[T]) Clone() *Generic[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)
	return &Generic[T]{r: m.r, c: m.c, data: data}
}

// String prints each row as "[a, b, c]" followed by a newline, using T.String.
func (m *Generic[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(m.data[i*m.c+j].String())
		}
		sb.WriteString(_fmtRowClose)
	}
	return sb.String()
}
