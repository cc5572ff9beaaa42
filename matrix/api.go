// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points that mirror the methods.
//   - Each facade delegates to the canonical kernel; no logic is duplicated.
//
// AI-Hints:
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.
//   - Facades never correct results; call Correct explicitly.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Shape) (*Dense, error) { return NewDense(m.Rows(), m.Cols()) }

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Shape) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	return NewIdentity(m.Rows())
}

// Sum is an alias for a.Add(b).
func Sum(a, b *Dense) (*Dense, error) { return a.Add(b) }

// Diff is an alias for a.Sub(b).
func Diff(a, b *Dense) (*Dense, error) { return a.Sub(b) }

// Product is an alias for a.Mul(b).
func Product(a, b *Dense) (*Dense, error) { return a.Mul(b) }

// T is an alias for m.Transpose().
func T(m *Dense) *Dense { return m.Transpose() }

// ScaleBy returns alpha·m; the scalar may sit on either side.
func ScaleBy(alpha float64, m *Dense) *Dense { return m.Scale(alpha) }

// Determinant is an alias for m.Det().
func Determinant(m *Dense) (float64, error) { return m.Det() }

// InverseOf is an alias for m.Inverse().
func InverseOf(m *Dense) (*Dense, error) { return m.Inverse() }

// InverseCorrected returns m⁻¹ with Correct applied to the result.
// Use when the inverse is expected to have integer or near-zero cells.
func InverseCorrected(m *Dense, opts ...Option) (*Dense, error) {
	inv, err := m.Inverse()
	if err != nil {
		return nil, err
	}
	inv.Correct(opts...)
	return inv, nil
}
