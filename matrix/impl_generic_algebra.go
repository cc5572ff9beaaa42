// SPDX-License-Identifier: MIT
// Package matrix: arithmetic and cofactor kernels for Generic[T].
//
// Purpose:
//   - Generalise the Dense kernels to any algebra.Ring element, using
//     Zero/One/Neg in place of 0.0/1.0/−1.0.
//
// Non-commutative rings:
//   - Mul keeps operand order (a[i][k]·b[k][j]); ScaleLeft and ScaleRight differ.
//   - Det for a non-commutative T (quaternions) returns the first-row Laplace
//     value a[0][x]·det(minor(0,x)) with that multiplication order. It is
//     well defined but NOT a multiplicative determinant; InverseGeneric is
//     only meaningful for commutative fields (Float64, Float32, Complex).

package matrix

import "github.com/katalvlaran/lvlalg/algebra"

// Add returns m + b. Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Generic[T]) Add(b *Generic[T]) (*Generic[T], error) {
	return m.zipWith(b, opAdd, func(x, y T) T { return x.Add(y) })
}

// Sub returns m − b. Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Generic[T]) Sub(b *Generic[T]) (*Generic[T], error) {
	return m.zipWith(b, opSub, func(x, y T) T { return x.Sub(y) })
}

func (m *Generic[T]) zipWith(b *Generic[T], tag string, f func(T, T) T) (*Generic[T], error) {
	if m == nil || b == nil {
		return nil, matrixErrorf(tag, ErrNilMatrix)
	}
	if err := ValidateSameShape(m, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out := &Generic[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	for k := range m.data {
		out.data[k] = f(m.data[k], b.data[k])
	}
	return out, nil
}

// Mul returns the product m × b, keeping left/right operand order per cell.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*n*p).
func (m *Generic[T]) Mul(b *Generic[T]) (*Generic[T], error) {
	if m == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if err := ValidateMulShape(m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	r, n, p := m.r, m.c, b.c
	out := &Generic[T]{r: r, c: p, data: make([]T, r*p)}
	var i, j, k int
	for i = 0; i < r; i++ {
		for j = 0; j < p; j++ {
			acc := algebra.ZeroOf[T]()
			for k = 0; k < n; k++ {
				acc = acc.Add(m.data[i*n+k].Mul(b.data[k*p+j]))
			}
			out.data[i*p+j] = acc
		}
	}
	return out, nil
}

// Apply returns a new matrix with f applied to every cell.
func (m *Generic[T]) Apply(f func(T) T) *Generic[T] {
	out := &Generic[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	for k, v := range m.data {
		out.data[k] = f(v)
	}
	return out
}

// ScaleLeft returns k·m (k multiplies each cell from the left).
func (m *Generic[T]) ScaleLeft(k T) *Generic[T] {
	return m.Apply(func(v T) T { return k.Mul(v) })
}

// ScaleRight returns m·k (k multiplies each cell from the right).
func (m *Generic[T]) ScaleRight(k T) *Generic[T] {
	return m.Apply(func(v T) T { return v.Mul(k) })
}

// Equal reports exact cell-wise equality via T.Equal. Different shapes are unequal.
func (m *Generic[T]) Equal(b *Generic[T]) bool {
	if m == nil || b == nil {
		return m == b
	}
	if m.r != b.r || m.c != b.c {
		return false
	}
	for k := range m.data {
		if !m.data[k].Equal(b.data[k]) {
			return false
		}
	}
	return true
}

// Transpose returns the c×r transpose.
func (m *Generic[T]) Transpose() *Generic[T] {
	rows, cols := m.r, m.c
	out := &Generic[T]{r: cols, c: rows, data: make([]T, len(m.data))}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.data[j*rows+i] = m.data[i*cols+j]
		}
	}
	return out
}

// Minor deletes row i and column j (same renumbering rule as Dense.Minor).
// Errors: ErrNilMatrix, ErrOutOfRange, ErrInvalidDimensions.
func (m *Generic[T]) Minor(i, j int) (*Generic[T], error) {
	if m == nil {
		return nil, matrixErrorf(opMinor, ErrNilMatrix)
	}
	if err := ValidateMinorShape(m, i, j); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	return m.minor(i, j), nil
}

func (m *Generic[T]) minor(i, j int) *Generic[T] {
	out := &Generic[T]{r: m.r - 1, c: m.c - 1, data: make([]T, (m.r-1)*(m.c-1))}
	k := 0
	for x := 0; x < m.r; x++ {
		if x == i {
			continue
		}
		for y := 0; y < m.c; y++ {
			if y == j {
				continue
			}
			out.data[k] = m.data[x*m.c+y]
			k++
		}
	}
	return out
}

// Det returns the first-row cofactor expansion over T.
//
// Implementation:
//   - 1×1: the entry; 2×2: a·d − b·c.
//   - n×n: Σ_x Sign(x)·a[0][x]·det(minor(0,x)), skipping cells equal to Zero.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n!).
func (m *Generic[T]) Det() (T, error) {
	if m == nil {
		var zero T
		return zero, matrixErrorf(opDet, ErrNilMatrix)
	}
	if err := ValidateSquare(m); err != nil {
		var zero T
		return zero, matrixErrorf(opDet, err)
	}
	return m.det(), nil
}

func (m *Generic[T]) det() T {
	switch m.r {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0].Mul(m.data[3]).Sub(m.data[1].Mul(m.data[2]))
	}

	sum := algebra.ZeroOf[T]()
	for x := 0; x < m.c; x++ {
		a := m.data[x]
		if algebra.IsZero(a) {
			continue
		}
		sum = sum.Add(algebra.Sign[T](x).Mul(a).Mul(m.minor(0, x).det()))
	}
	return sum
}

// adjugate returns the transpose of the cofactor matrix (square m).
func (m *Generic[T]) adjugate() *Generic[T] {
	n := m.r
	out := &Generic[T]{r: n, c: n, data: make([]T, n*n)}
	if n == 1 {
		out.data[0] = algebra.OneOf[T]()
		return out
	}
	t := m.Transpose()
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			out.data[x*n+y] = algebra.Sign[T](x + y).Mul(t.minor(x, y).det())
		}
	}
	return out
}

// Adjugate returns the transpose of the cofactor matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
func (m *Generic[T]) Adjugate() (*Generic[T], error) {
	if m == nil {
		return nil, matrixErrorf(opAdjugate, ErrNilMatrix)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	return m.adjugate(), nil
}

// InverseGeneric returns adj(m)·det(m)⁻¹ for a matrix over a field.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular when det(m) equals T's zero (exact, no tolerance).
//
// Notes:
//   - Valid for commutative fields only; see the package notes above.
func InverseGeneric[T algebra.Field[T]](m *Generic[T]) (*Generic[T], error) {
	if m == nil {
		return nil, matrixErrorf(opInverse, ErrNilMatrix)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	d := m.det()
	if algebra.IsZero(d) {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	dInv, err := d.Inv()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	return m.adjugate().ScaleRight(dInv), nil
}
