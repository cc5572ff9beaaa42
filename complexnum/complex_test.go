// SPDX-License-Identifier: MIT

package complexnum_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/complexnum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

var _ algebra.Field[complexnum.Complex] = complexnum.Complex{}

func TestArithmetic(t *testing.T) {
	a := complexnum.New(1, 2)
	b := complexnum.New(3, -4)

	assert.Equal(t, complexnum.New(4, -2), a.Add(b))
	assert.Equal(t, complexnum.New(-2, 6), a.Sub(b))
	// (1+2i)(3-4i) = 3 - 4i + 6i + 8 = 11 + 2i
	assert.Equal(t, complexnum.New(11, 2), a.Mul(b))
	assert.Equal(t, complexnum.New(-1, -2), a.Neg())
	assert.Equal(t, complexnum.New(1, -2), a.Conjugate())
	assert.Equal(t, complexnum.New(6, 2), a.AddScalar(5))
	assert.Equal(t, complexnum.New(2, 4), a.ScaleBy(2))
}

func TestImaginaryUnitSquared(t *testing.T) {
	i := complexnum.I()
	assert.True(t, i.Mul(i).Equal(complexnum.New(-1, 0)))
	assert.True(t, i.Neg().Mul(i).Equal(complexnum.One()))
}

func TestDiv_Scenario(t *testing.T) {
	a := complexnum.New(12, 13)
	b := complexnum.New(0, 3)

	q, err := a.Div(b)
	require.NoError(t, err)
	assert.InDelta(t, 13.0/3.0, q.Re, tol)
	assert.InDelta(t, -4.0, q.Im, tol)

	back := q.Mul(b)
	assert.True(t, back.EqualApprox(a, tol), "(a/b)*b = %v, want %v", back, a)
}

func TestDiv_RoundTrip(t *testing.T) {
	for _, tc := range []struct{ a, b complexnum.Complex }{
		{complexnum.New(1, 1), complexnum.New(2, -3)},
		{complexnum.New(-7.5, 0.25), complexnum.New(0.5, 0.5)},
		{complexnum.New(0, 0), complexnum.New(1, 0)},
		{complexnum.New(1e3, -2e3), complexnum.New(-4, 9)},
		{complexnum.New(1, 0), complexnum.New(1e-170, 0)},
		{complexnum.New(1, 0), complexnum.New(1e170, 0)},
		{complexnum.New(3, -2), complexnum.New(1e-170, 2e-170)},
		{complexnum.New(-5, 7), complexnum.New(4e170, -3e170)},
		{complexnum.New(0.5, 2), complexnum.New(-1e-170, 3e-171)},
	} {
		q, err := tc.a.Div(tc.b)
		require.NoError(t, err)
		assert.True(t, q.Mul(tc.b).EqualApprox(tc.a, 1e-9), "%v / %v", tc.a, tc.b)
	}
}

// Divisors whose squared magnitude would leave the float64 range.
func TestDiv_ExtremeMagnitudes(t *testing.T) {
	q, err := complexnum.One().Div(complexnum.New(1e-170, 0))
	require.NoError(t, err)
	assert.InEpsilon(t, 1e170, q.Re, 1e-15)
	assert.Equal(t, 0.0, q.Im)

	q, err = complexnum.One().Div(complexnum.New(1e170, 0))
	require.NoError(t, err)
	assert.InEpsilon(t, 1e-170, q.Re, 1e-15)

	inv, err := complexnum.New(0, 1e-170).Inv()
	require.NoError(t, err)
	assert.InEpsilon(t, -1e170, inv.Im, 1e-15)

	assert.InEpsilon(t, 5e200, complexnum.New(3e200, 4e200).Abs(), 1e-15)
	assert.InEpsilon(t, 5e-200, complexnum.New(-3e-200, 4e-200).Abs(), 1e-15)
}

func TestDiv_ByZero(t *testing.T) {
	_, err := complexnum.New(1, 1).Div(complexnum.Zero())
	require.ErrorIs(t, err, algebra.ErrDivisionByZero)

	_, err = complexnum.Zero().Inv()
	require.ErrorIs(t, err, algebra.ErrDivisionByZero)
}

func TestInv(t *testing.T) {
	inv, err := complexnum.I().Inv()
	require.NoError(t, err)
	assert.True(t, inv.Equal(complexnum.New(0, -1)))
}

func TestAbsArg(t *testing.T) {
	c := complexnum.New(3, 4)
	assert.Equal(t, 5.0, c.Abs())
	assert.InDelta(t, math.Pi/2, complexnum.I().Arg(), tol)
	assert.True(t, complexnum.New(2, 0).IsReal())
	assert.False(t, c.IsReal())
}

func TestEqualIsExact(t *testing.T) {
	x, y := 0.1, 0.2
	a := complexnum.New(x+y, 0)
	b := complexnum.New(0.3, 0)
	assert.False(t, a.Equal(b))
	assert.True(t, a.EqualApprox(b, 1e-15))
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, complexnum.Complex{}, complexnum.Zero())
	assert.Equal(t, complexnum.New(1, 0), complexnum.One())
	assert.Equal(t, complexnum.New(math.MaxFloat64, math.MaxFloat64), complexnum.Max())
	assert.Equal(t, complexnum.I(), complexnum.Complex{}.Default())
	assert.Equal(t, complexnum.New(2, -1), complexnum.FromBuiltin(complex(2, -1)))
	assert.Equal(t, complex(2, -1), complexnum.New(2, -1).Builtin())
	assert.Equal(t, []float64{2, -1}, complexnum.New(2, -1).Components())
}

func TestString(t *testing.T) {
	for want, c := range map[string]complexnum.Complex{
		"0":      complexnum.Zero(),
		"3":      complexnum.New(3, 0),
		"i":      complexnum.I(),
		"-i":     complexnum.New(0, -1),
		"3+4i":   complexnum.New(3, 4),
		"-2.5-i": complexnum.New(-2.5, -1),
		"2i":     complexnum.New(0, 2),
		"1-2i":   complexnum.New(1, -2),
	} {
		assert.Equal(t, want, c.String())
	}
}

func TestString_NegativeZero(t *testing.T) {
	for want, c := range map[string]complexnum.Complex{
		"0":  complexnum.Zero().Neg(),
		"i":  complexnum.New(0, -1).Neg(),
		"-i": complexnum.I().ScaleBy(-1),
	} {
		assert.Equal(t, want, c.String())
	}
}
