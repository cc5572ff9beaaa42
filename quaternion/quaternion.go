// SPDX-License-Identifier: MIT

// Package quaternion implements an immutable quaternion value type
// re + im·i + jm·j + km·k with the Hamilton product.
//
// Multiplication is non-commutative (i·j = k, j·i = −k), so callers that
// need a two-sided identity (q·q⁻¹ = q⁻¹·q = 1) must check both orders.
// Quaternion satisfies algebra.Field and can be plugged into matrix.Generic.
package quaternion

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlalg/algebra"
)

const (
	opInverse = "Inverse"
	opUnit    = "Unit"
	opDiv     = "Div"
)

// Quaternion is re + im·i + jm·j + km·k.
type Quaternion struct {
	Re float64
	Im float64
	Jm float64
	Km float64
}

// New returns re + im·i + jm·j + km·k.
func New(re, im, jm, km float64) Quaternion {
	return Quaternion{Re: re, Im: im, Jm: jm, Km: km}
}

// Real returns the real quaternion x.
func Real(x float64) Quaternion { return Quaternion{Re: x} }

// Zero returns the zero quaternion.
func Zero() Quaternion { return Quaternion{} }

// One returns the real unit 1.
func One() Quaternion { return Quaternion{Re: 1} }

// I returns the basis unit i.
func I() Quaternion { return Quaternion{Im: 1} }

// J returns the basis unit j.
func J() Quaternion { return Quaternion{Jm: 1} }

// K returns the basis unit k.
func K() Quaternion { return Quaternion{Km: 1} }

// Zero implements algebra.Zero; the receiver is ignored.
func (Quaternion) Zero() Quaternion { return Zero() }

// One implements algebra.One; the receiver is ignored.
func (Quaternion) One() Quaternion { return One() }

// Default is i + j + k.
func (Quaternion) Default() Quaternion { return New(0, 1, 1, 1) }

// Add returns q + o component-wise.
func (q Quaternion) Add(o Quaternion) Quaternion {
	return Quaternion{Re: q.Re + o.Re, Im: q.Im + o.Im, Jm: q.Jm + o.Jm, Km: q.Km + o.Km}
}

// Sub returns q - o component-wise.
func (q Quaternion) Sub(o Quaternion) Quaternion {
	return Quaternion{Re: q.Re - o.Re, Im: q.Im - o.Im, Jm: q.Jm - o.Jm, Km: q.Km - o.Km}
}

// Mul returns the Hamilton product q·o.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		Re: q.Re*o.Re - q.Im*o.Im - q.Jm*o.Jm - q.Km*o.Km,
		Im: q.Re*o.Im + q.Im*o.Re + q.Jm*o.Km - q.Km*o.Jm,
		Jm: q.Re*o.Jm - q.Im*o.Km + q.Jm*o.Re + q.Km*o.Im,
		Km: q.Re*o.Km + q.Im*o.Jm - q.Jm*o.Im + q.Km*o.Re,
	}
}

// Neg returns -q.
func (q Quaternion) Neg() Quaternion { return q.ScaleBy(-1) }

// AddScalar returns q + x (x lands on the real part).
func (q Quaternion) AddScalar(x float64) Quaternion {
	q.Re += x
	return q
}

// ScaleBy returns x·q (real scalars commute with every quaternion).
func (q Quaternion) ScaleBy(x float64) Quaternion {
	return q.Apply(func(v float64) float64 { return v * x })
}

// Apply maps f over all four components independently.
func (q Quaternion) Apply(f func(float64) float64) Quaternion {
	return Quaternion{Re: f(q.Re), Im: f(q.Im), Jm: f(q.Jm), Km: f(q.Km)}
}

// Conjugate returns re − im·i − jm·j − km·k, derived from the identity
//
//	conj(q) = −½ · (q + i·q·i + j·q·j + k·q·k)
//
// q·conj(q) = conj(q)·q = |q|² holds for every q.
func (q Quaternion) Conjugate() Quaternion {
	i, j, k := I(), J(), K()
	sum := q.Add(i.Mul(q).Mul(i)).Add(j.Mul(q).Mul(j)).Add(k.Mul(q).Mul(k))
	return sum.ScaleBy(-0.5)
}

// Norm returns the Euclidean length of the 4-vector.
func (q Quaternion) Norm() float64 {
	p, s := q.scaled()
	if s == 0 {
		return 0
	}
	return s * math.Sqrt(p.normSquared())
}

func (q Quaternion) normSquared() float64 {
	return q.Re*q.Re + q.Im*q.Im + q.Jm*q.Jm + q.Km*q.Km
}

// scaled returns q / s with s = max|component|, so every component of the
// result lies in [-1, 1] and squaring cannot under- or overflow.
// s is 0 only for the zero quaternion, which is returned unchanged.
func (q Quaternion) scaled() (Quaternion, float64) {
	s := max(math.Abs(q.Re), math.Abs(q.Im), math.Abs(q.Jm), math.Abs(q.Km))
	if s == 0 {
		return q, 0
	}
	return q.Apply(func(v float64) float64 { return v / s }), s
}

// Inverse returns conj(q) / |q|², evaluated on the scaled quaternion
// p = q/s as conj(p) / |p|² / s.
// Fails with algebra.ErrDivisionByZero for the zero quaternion only.
func (q Quaternion) Inverse() (Quaternion, error) {
	p, s := q.scaled()
	if s == 0 {
		return Quaternion{}, fmt.Errorf("%s: %w", opInverse, algebra.ErrDivisionByZero)
	}
	n2 := p.normSquared()
	return p.Conjugate().Apply(func(v float64) float64 { return v / n2 / s }), nil
}

// Inv implements algebra.Field.
func (q Quaternion) Inv() (Quaternion, error) { return q.Inverse() }

// Div returns the right quotient q·o⁻¹.
func (q Quaternion) Div(o Quaternion) (Quaternion, error) {
	inv, err := o.Inverse()
	if err != nil {
		return Quaternion{}, fmt.Errorf("%s: %w", opDiv, err)
	}
	return q.Mul(inv), nil
}

// Unit returns q / |q|. Fails for the zero quaternion.
func (q Quaternion) Unit() (Quaternion, error) {
	p, s := q.scaled()
	if s == 0 {
		return Quaternion{}, fmt.Errorf("%s: %w", opUnit, algebra.ErrDivisionByZero)
	}
	n := math.Sqrt(p.normSquared())
	return p.Apply(func(v float64) float64 { return v / n }), nil
}

// IsReal reports whether every non-real component is exactly zero.
func (q Quaternion) IsReal() bool { return q.Im == 0 && q.Jm == 0 && q.Km == 0 }

// Equal is exact component-wise comparison.
func (q Quaternion) Equal(o Quaternion) bool {
	return q.Re == o.Re && q.Im == o.Im && q.Jm == o.Jm && q.Km == o.Km
}

// EqualApprox compares component-wise within an absolute tolerance.
func (q Quaternion) EqualApprox(o Quaternion, tol float64) bool {
	return math.Abs(q.Re-o.Re) <= tol && math.Abs(q.Im-o.Im) <= tol &&
		math.Abs(q.Jm-o.Jm) <= tol && math.Abs(q.Km-o.Km) <= tol
}

// Components returns [re, im, jm, km].
func (q Quaternion) Components() []float64 { return []float64{q.Re, q.Im, q.Jm, q.Km} }
