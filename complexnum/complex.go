// SPDX-License-Identifier: MIT

// Package complexnum implements an immutable complex number value type that
// satisfies algebra.Field, so it can be plugged into matrix.Generic.
//
// Every operation returns a fresh value; equality is exact field-wise
// comparison (use EqualApprox when rounding matters).
package complexnum

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlalg/algebra"
)

const opDiv = "Div"

// Complex is re + im·i.
type Complex struct {
	Re float64
	Im float64
}

// New returns re + im·i.
func New(re, im float64) Complex { return Complex{Re: re, Im: im} }

// Zero returns 0 + 0i.
func Zero() Complex { return Complex{} }

// One returns 1 + 0i.
func One() Complex { return Complex{Re: 1} }

// I returns the imaginary unit.
func I() Complex { return Complex{Im: 1} }

// Max returns a sentinel with both parts at math.MaxFloat64.
// It is an "infinity-ish" marker, not IEEE infinity.
func Max() Complex { return Complex{Re: math.MaxFloat64, Im: math.MaxFloat64} }

// FromBuiltin converts a complex128.
func FromBuiltin(z complex128) Complex { return Complex{Re: real(z), Im: imag(z)} }

// Builtin converts c to complex128.
func (c Complex) Builtin() complex128 { return complex(c.Re, c.Im) }

// Zero implements algebra.Zero; the receiver is ignored.
func (Complex) Zero() Complex { return Zero() }

// One implements algebra.One; the receiver is ignored.
func (Complex) One() Complex { return One() }

// Default is the imaginary unit i.
func (Complex) Default() Complex { return I() }

// Add returns c + o.
func (c Complex) Add(o Complex) Complex { return Complex{Re: c.Re + o.Re, Im: c.Im + o.Im} }

// Sub returns c - o.
func (c Complex) Sub(o Complex) Complex { return Complex{Re: c.Re - o.Re, Im: c.Im - o.Im} }

// Mul computes (a+bi)(c+di) = (ac - bd) + (ad + bc)i.
func (c Complex) Mul(o Complex) Complex {
	return Complex{
		Re: c.Re*o.Re - c.Im*o.Im,
		Im: c.Re*o.Im + c.Im*o.Re,
	}
}

// Neg returns -c.
func (c Complex) Neg() Complex { return Complex{Re: -c.Re, Im: -c.Im} }

// AddScalar returns c + x (x lands on the real part).
func (c Complex) AddScalar(x float64) Complex { return Complex{Re: c.Re + x, Im: c.Im} }

// ScaleBy returns x·c.
func (c Complex) ScaleBy(x float64) Complex { return c.Apply(func(v float64) float64 { return v * x }) }

// Apply maps f over both components independently.
func (c Complex) Apply(f func(float64) float64) Complex {
	return Complex{Re: f(c.Re), Im: f(c.Im)}
}

// Conjugate negates the imaginary part.
func (c Complex) Conjugate() Complex { return Complex{Re: c.Re, Im: -c.Im} }

// Abs returns the magnitude sqrt(re² + im²) without intermediate overflow.
func (c Complex) Abs() float64 { return math.Hypot(c.Re, c.Im) }

// Arg returns the argument (angle) in (-π, π].
func (c Complex) Arg() float64 { return math.Atan2(c.Im, c.Re) }

// IsReal reports whether the imaginary part is exactly zero.
func (c Complex) IsReal() bool { return c.Im == 0 }

// Div computes c / o with Smith's algorithm: the divisor is scaled by its
// larger component, so |o|² is never formed and the quotient neither
// underflows nor overflows while it is representable.
// Fails with algebra.ErrDivisionByZero when o is zero; no partial result.
func (c Complex) Div(o Complex) (Complex, error) {
	if o.Re == 0 && o.Im == 0 {
		return Complex{}, fmt.Errorf("%s: %w", opDiv, algebra.ErrDivisionByZero)
	}
	if math.Abs(o.Re) >= math.Abs(o.Im) {
		r := o.Im / o.Re
		den := o.Re + o.Im*r
		return Complex{Re: (c.Re + c.Im*r) / den, Im: (c.Im - c.Re*r) / den}, nil
	}
	r := o.Re / o.Im
	den := o.Re*r + o.Im
	return Complex{Re: (c.Re*r + c.Im) / den, Im: (c.Im*r - c.Re) / den}, nil
}

// Inv returns 1/c.
func (c Complex) Inv() (Complex, error) { return One().Div(c) }

// Equal is exact field-wise comparison.
func (c Complex) Equal(o Complex) bool { return c.Re == o.Re && c.Im == o.Im }

// EqualApprox compares component-wise within an absolute tolerance.
func (c Complex) EqualApprox(o Complex, tol float64) bool {
	return math.Abs(c.Re-o.Re) <= tol && math.Abs(c.Im-o.Im) <= tol
}

// Components returns [re, im].
func (c Complex) Components() []float64 { return []float64{c.Re, c.Im} }
