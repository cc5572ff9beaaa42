// SPDX-License-Identifier: MIT

package algebra

// Zero is implemented by types that expose an additive identity.
type Zero[T any] interface {
	// Zero returns the additive identity. The receiver is only a witness.
	Zero() T
}

// One is implemented by types that expose a multiplicative identity.
type One[T any] interface {
	// One returns the multiplicative identity. The receiver is only a witness.
	One() T
}

// Ring is the capability set required by the generic matrix engine.
//
// Contract:
//   - Add/Sub/Mul/Neg never mutate the receiver and return fresh values.
//   - Mul is NOT assumed commutative (quaternions are not).
//   - Equal is exact; tolerance-aware comparison is the caller's concern.
type Ring[T any] interface {
	Zero[T]
	One[T]
	Add(T) T
	Sub(T) T
	Mul(T) T
	Neg() T
	Equal(T) bool
	String() string
}

// Field extends Ring with a multiplicative inverse.
// Inv MUST fail with ErrDivisionByZero for the additive identity.
type Field[T any] interface {
	Ring[T]
	Inv() (T, error)
}

// Defaulter is an optional capability used by constructors that fill cells
// with a "default" value distinct from the additive identity.
type Defaulter[T any] interface {
	Default() T
}

// ZeroOf returns the additive identity of T using T's zero value as witness.
func ZeroOf[T Ring[T]]() T {
	var w T
	return w.Zero()
}

// OneOf returns the multiplicative identity of T.
func OneOf[T Ring[T]]() T {
	var w T
	return w.One()
}

// DefaultOf returns T's Default() when T implements Defaulter, else the Go
// zero value of T.
func DefaultOf[T any]() T {
	var w T
	if d, ok := any(w).(Defaulter[T]); ok {
		return d.Default()
	}
	return w
}

// IsZero reports whether v equals the additive identity of T.
func IsZero[T Ring[T]](v T) bool {
	return v.Equal(v.Zero())
}

// Sign returns (-1)^k expressed in T: One for even k, One().Neg() for odd k.
// Negative k follow the same parity rule.
func Sign[T Ring[T]](k int) T {
	one := OneOf[T]()
	if k%2 != 0 {
		return one.Neg()
	}
	return one
}

// Sum folds vs with Add starting from the additive identity.
// An empty input yields Zero.
func Sum[T Ring[T]](vs ...T) T {
	acc := ZeroOf[T]()
	for _, v := range vs {
		acc = acc.Add(v)
	}
	return acc
}
