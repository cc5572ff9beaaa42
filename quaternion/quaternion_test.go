// SPDX-License-Identifier: MIT

package quaternion_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/quaternion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const tol = 1e-12

var _ algebra.Field[quaternion.Quaternion] = quaternion.Quaternion{}

// UnitsSuite checks the multiplication table of the basis units.
type UnitsSuite struct {
	suite.Suite
	i, j, k quaternion.Quaternion
}

func (s *UnitsSuite) SetupTest() {
	s.i, s.j, s.k = quaternion.I(), quaternion.J(), quaternion.K()
}

func (s *UnitsSuite) TestSquares() {
	minusOne := quaternion.Real(-1)
	s.True(s.i.Mul(s.i).Equal(minusOne))
	s.True(s.j.Mul(s.j).Equal(minusOne))
	s.True(s.k.Mul(s.k).Equal(minusOne))
}

func (s *UnitsSuite) TestIJK() {
	s.True(s.i.Mul(s.j).Mul(s.k).Equal(quaternion.New(-1, 0, 0, 0)))
}

func (s *UnitsSuite) TestNonCommutative() {
	s.True(s.i.Mul(s.j).Equal(s.k))
	s.True(s.j.Mul(s.i).Equal(s.k.Neg()))
	s.True(s.j.Mul(s.k).Equal(s.i))
	s.True(s.k.Mul(s.j).Equal(s.i.Neg()))
	s.True(s.k.Mul(s.i).Equal(s.j))
	s.True(s.i.Mul(s.k).Equal(s.j.Neg()))
}

func (s *UnitsSuite) TestNegatedDemo() {
	// (-i)·j·k = 1
	s.True(s.i.Neg().Mul(s.j).Mul(s.k).Equal(quaternion.One()))
}

func TestUnitsSuite(t *testing.T) {
	suite.Run(t, new(UnitsSuite))
}

func TestConjugate_MatchesSignFlip(t *testing.T) {
	for _, q := range []quaternion.Quaternion{
		quaternion.New(1, 2, 3, 4),
		quaternion.New(-2, -2, -3.324, 4),
		quaternion.New(0.5, 0, -7, 1e-3),
		quaternion.Zero(),
	} {
		c := q.Conjugate()
		want := quaternion.New(q.Re, -q.Im, -q.Jm, -q.Km)
		assert.True(t, c.EqualApprox(want, tol), "conj(%v) = %v", q, c)

		n2 := q.Norm() * q.Norm()
		assert.True(t, q.Mul(c).EqualApprox(quaternion.Real(n2), 1e-9))
		assert.True(t, c.Mul(q).EqualApprox(quaternion.Real(n2), 1e-9))
	}
}

func TestInverse_TwoSided(t *testing.T) {
	for _, q := range []quaternion.Quaternion{
		quaternion.New(1, 2, 3, 4),
		quaternion.New(-2, -2, -3.324, 4),
		quaternion.I(),
		quaternion.New(0, 0, 0, 0.25),
		quaternion.Real(1e-170),
		quaternion.Real(1e170),
		quaternion.New(1e-170, -2e-170, 3e-170, 1e-170),
		quaternion.New(2e170, 0, -1e170, 5e169),
	} {
		inv, err := q.Inverse()
		require.NoError(t, err)
		assert.True(t, q.Mul(inv).EqualApprox(quaternion.One(), tol), "q·q⁻¹ for %v", q)
		assert.True(t, inv.Mul(q).EqualApprox(quaternion.One(), tol), "q⁻¹·q for %v", q)
	}
}

func TestInverse_Zero(t *testing.T) {
	_, err := quaternion.Zero().Inverse()
	require.ErrorIs(t, err, algebra.ErrDivisionByZero)
	_, err = quaternion.Zero().Unit()
	require.ErrorIs(t, err, algebra.ErrDivisionByZero)
	_, err = quaternion.One().Div(quaternion.Zero())
	require.ErrorIs(t, err, algebra.ErrDivisionByZero)
}

func TestDiv_RightQuotient(t *testing.T) {
	a := quaternion.New(1, -1, 2, 0.5)
	b := quaternion.New(3, 0, 1, -2)
	q, err := a.Div(b)
	require.NoError(t, err)
	assert.True(t, q.Mul(b).EqualApprox(a, 1e-12))
}

func TestNormUnit(t *testing.T) {
	q := quaternion.New(1, 1, 1, 1)
	assert.Equal(t, 2.0, q.Norm())
	u, err := q.Unit()
	require.NoError(t, err)
	assert.Equal(t, quaternion.New(0.5, 0.5, 0.5, 0.5), u)
	assert.InDelta(t, 1.0, u.Norm(), tol)
}

// Components whose squares would leave the float64 range.
func TestInverseNormUnit_ExtremeMagnitudes(t *testing.T) {
	inv, err := quaternion.Real(1e-170).Inverse()
	require.NoError(t, err)
	assert.InEpsilon(t, 1e170, inv.Re, 1e-15)

	inv, err = quaternion.Real(1e170).Inverse()
	require.NoError(t, err)
	assert.InEpsilon(t, 1e-170, inv.Re, 1e-15)

	u, err := quaternion.Real(1e200).Unit()
	require.NoError(t, err)
	assert.Equal(t, quaternion.One(), u)

	u, err = quaternion.New(0, 3e-200, 0, -4e-200).Unit()
	require.NoError(t, err)
	assert.True(t, u.EqualApprox(quaternion.New(0, 0.6, 0, -0.8), tol), "unit = %v", u)

	assert.Equal(t, 1e200, quaternion.Real(1e200).Norm())
	assert.InEpsilon(t, 5e-200, quaternion.New(3e-200, 4e-200, 0, 0).Norm(), 1e-15)
	assert.Equal(t, 0.0, quaternion.Zero().Norm())

	q, err := quaternion.One().Div(quaternion.J().ScaleBy(1e-170))
	require.NoError(t, err)
	assert.InEpsilon(t, -1e170, q.Jm, 1e-15)
}

func TestScalarMixing(t *testing.T) {
	q := quaternion.New(1, 2, 3, 4)
	assert.Equal(t, quaternion.New(3, 2, 3, 4), q.AddScalar(2))
	assert.Equal(t, quaternion.New(2, 4, 6, 8), q.ScaleBy(2))
	assert.Equal(t, quaternion.New(0, 0, 0, 0), q.Sub(q))
	assert.Equal(t, []float64{1, 2, 3, 4}, q.Components())
	assert.True(t, quaternion.Real(math.Pi).IsReal())
	assert.False(t, q.IsReal())
	assert.Equal(t, quaternion.New(0, 1, 1, 1), quaternion.Quaternion{}.Default())
}

func TestString(t *testing.T) {
	for want, q := range map[string]quaternion.Quaternion{
		"0":           quaternion.Zero(),
		"1":           quaternion.One(),
		"i":           quaternion.I(),
		"-j":          quaternion.J().Neg(),
		"k":           quaternion.K(),
		"i+j+k":       quaternion.New(0, 1, 1, 1),
		"1+2i-j+0.5k": quaternion.New(1, 2, -1, 0.5),
		"-2-2i-3j+4k": quaternion.New(-2, -2, -3, 4),
		"3k":          quaternion.New(0, 0, 0, 3),
	} {
		assert.Equal(t, want, q.String())
	}
}

func TestString_NegativeZero(t *testing.T) {
	assert.Equal(t, "0", quaternion.Zero().Neg().String())
	assert.Equal(t, "-i", quaternion.I().Neg().String())
	assert.Equal(t, "1", quaternion.One().Neg().Neg().String())
}
