// SPDX-License-Identifier: MIT
// Package matrix provides converters between the package's matrices and
// gonum's dense types, plus bridges between Dense and Generic[Float64].
//
// All converters copy; no storage is shared across the boundary.
package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/complexnum"
)

// ToGonum copies m into a *mat.Dense.
// Time Complexity: O(r*c).
func ToGonum(m *Dense) *mat.Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return mat.NewDense(m.r, m.c, data)
}

// FromGonum copies any gonum real matrix into a *Dense.
// Errors: ErrNilMatrix, ErrInvalidDimensions (empty gonum matrix).
func FromGonum(a mat.Matrix) (*Dense, error) {
	if a == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := a.Dims()
	m, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.data[i*c+j] = a.At(i, j)
		}
	}
	return m, nil
}

// ToGonumComplex copies a complex-valued Generic into a *mat.CDense.
func ToGonumComplex(m *Generic[complexnum.Complex]) *mat.CDense {
	data := make([]complex128, len(m.data))
	for k, v := range m.data {
		data[k] = v.Builtin()
	}
	return mat.NewCDense(m.r, m.c, data)
}

// FromGonumComplex copies any gonum complex matrix into a Generic[Complex].
// Errors: ErrNilMatrix, ErrInvalidDimensions.
func FromGonumComplex(a mat.CMatrix) (*Generic[complexnum.Complex], error) {
	if a == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := a.Dims()
	m, err := NewGenericZero[complexnum.Complex](r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.data[i*c+j] = complexnum.FromBuiltin(a.At(i, j))
		}
	}
	return m, nil
}

// ToGeneric lifts m into the generic engine over algebra.Float64.
func (m *Dense) ToGeneric() *Generic[algebra.Float64] {
	out := &Generic[algebra.Float64]{r: m.r, c: m.c, data: make([]algebra.Float64, len(m.data))}
	for k, v := range m.data {
		out.data[k] = algebra.Float64(v)
	}
	return out
}

// DenseFromGeneric lowers a Generic[Float64] back into a *Dense.
func DenseFromGeneric(g *Generic[algebra.Float64]) *Dense {
	out := &Dense{r: g.r, c: g.c, data: make([]float64, len(g.data))}
	for k, v := range g.data {
		out.data[k] = float64(v)
	}
	return out
}
