// SPDX-License-Identifier: MIT
// Package algebra: scalar element types.
//
// Purpose:
//   - Give built-in numeric kinds a method set so they satisfy Ring/Field.
//   - Keep every method a one-liner; no hidden conversions or rounding.
//
// Notes:
//   - Integer types intentionally do not implement Field (no exact Inv).
//   - Default() of every scalar is its zero value.

package algebra

import "strconv"

// Float64 is a float64 element (Field).
type Float64 float64

// Zero returns the additive identity.
func (Float64) Zero() Float64 { return 0 }

// One returns the multiplicative identity.
func (Float64) One() Float64 { return 1 }

// Default returns the zero value.
func (Float64) Default() Float64 { return 0 }

// Add returns a + b.
func (a Float64) Add(b Float64) Float64 { return a + b }

// Sub returns a - b.
func (a Float64) Sub(b Float64) Float64 { return a - b }

// Mul returns a * b.
func (a Float64) Mul(b Float64) Float64 { return a * b }

// Neg returns -a.
func (a Float64) Neg() Float64 { return -a }

// Equal reports a == b.
func (a Float64) Equal(b Float64) bool { return a == b }

// String formats a in decimal.
func (a Float64) String() string { return strconv.FormatFloat(float64(a), 'g', -1, 64) }

// Inv returns 1/a; fails with ErrDivisionByZero for zero.
func (a Float64) Inv() (Float64, error) { return invFloat(a) }

// Div returns a / b; fails with ErrDivisionByZero when b is zero.
func (a Float64) Div(b Float64) (Float64, error) {
	inv, err := b.Inv()
	if err != nil {
		return 0, err
	}
	return a * inv, nil
}

// Float32 is a float32 element (Field).
type Float32 float32

// Zero returns the additive identity.
func (Float32) Zero() Float32 { return 0 }

// One returns the multiplicative identity.
func (Float32) One() Float32 { return 1 }

// Default returns the zero value.
func (Float32) Default() Float32 { return 0 }

// Add returns a + b.
func (a Float32) Add(b Float32) Float32 { return a + b }

// Sub returns a - b.
func (a Float32) Sub(b Float32) Float32 { return a - b }

// Mul returns a * b.
func (a Float32) Mul(b Float32) Float32 { return a * b }

// Neg returns -a.
func (a Float32) Neg() Float32 { return -a }

// Equal reports a == b.
func (a Float32) Equal(b Float32) bool { return a == b }

// String formats a in decimal.
func (a Float32) String() string { return strconv.FormatFloat(float64(a), 'g', -1, 32) }

// Inv returns 1/a; fails with ErrDivisionByZero for zero.
func (a Float32) Inv() (Float32, error) { return invFloat(a) }

// Int32 is an int32 element (Ring).
type Int32 int32

// Zero returns the additive identity.
func (Int32) Zero() Int32 { return 0 }

// One returns the multiplicative identity.
func (Int32) One() Int32 { return 1 }

// Default returns the zero value.
func (Int32) Default() Int32 { return 0 }

// Add returns a + b.
func (a Int32) Add(b Int32) Int32 { return a + b }

// Sub returns a - b.
func (a Int32) Sub(b Int32) Int32 { return a - b }

// Mul returns a * b.
func (a Int32) Mul(b Int32) Int32 { return a * b }

// Neg returns -a.
func (a Int32) Neg() Int32 { return -a }

// Equal reports a == b.
func (a Int32) Equal(b Int32) bool { return a == b }

// String formats a in decimal.
func (a Int32) String() string { return strconv.FormatInt(int64(a), 10) }

// Int64 is an int64 element (Ring).
type Int64 int64

// Zero returns the additive identity.
func (Int64) Zero() Int64 { return 0 }

// One returns the multiplicative identity.
func (Int64) One() Int64 { return 1 }

// Default returns the zero value.
func (Int64) Default() Int64 { return 0 }

// Add returns a + b.
func (a Int64) Add(b Int64) Int64 { return a + b }

// Sub returns a - b.
func (a Int64) Sub(b Int64) Int64 { return a - b }

// Mul returns a * b.
func (a Int64) Mul(b Int64) Int64 { return a * b }

// Neg returns -a.
func (a Int64) Neg() Int64 { return -a }

// Equal reports a == b.
func (a Int64) Equal(b Int64) bool { return a == b }

// String formats a in decimal.
func (a Int64) String() string { return strconv.FormatInt(int64(a), 10) }

// Uint32 is a uint32 element (Ring over Z/2^32).
type Uint32 uint32

// Zero returns the additive identity.
func (Uint32) Zero() Uint32 { return 0 }

// One returns the multiplicative identity.
func (Uint32) One() Uint32 { return 1 }

// Default returns the zero value.
func (Uint32) Default() Uint32 { return 0 }

// Add returns a + b.
func (a Uint32) Add(b Uint32) Uint32 { return a + b }

// Sub returns a - b.
func (a Uint32) Sub(b Uint32) Uint32 { return a - b }

// Mul returns a * b.
func (a Uint32) Mul(b Uint32) Uint32 { return a * b }

// Neg returns -a modulo 2^32.
func (a Uint32) Neg() Uint32 { return -a }

// Equal reports a == b.
func (a Uint32) Equal(b Uint32) bool { return a == b }

// String formats a in decimal.
func (a Uint32) String() string { return strconv.FormatUint(uint64(a), 10) }

// Uint64 is a uint64 element (Ring over Z/2^64).
type Uint64 uint64

// Zero returns the additive identity.
func (Uint64) Zero() Uint64 { return 0 }

// One returns the multiplicative identity.
func (Uint64) One() Uint64 { return 1 }

// Default returns the zero value.
func (Uint64) Default() Uint64 { return 0 }

// Add returns a + b.
func (a Uint64) Add(b Uint64) Uint64 { return a + b }

// Sub returns a - b.
func (a Uint64) Sub(b Uint64) Uint64 { return a - b }

// Mul returns a * b.
func (a Uint64) Mul(b Uint64) Uint64 { return a * b }

// Neg returns -a modulo 2^64.
func (a Uint64) Neg() Uint64 { return -a }

// Equal reports a == b.
func (a Uint64) Equal(b Uint64) bool { return a == b }

// String formats a in decimal.
func (a Uint64) String() string { return strconv.FormatUint(uint64(a), 10) }

// Uint is a uint element (Ring over Z/2^n, n = platform word size).
type Uint uint

// Zero returns the additive identity.
func (Uint) Zero() Uint { return 0 }

// One returns the multiplicative identity.
func (Uint) One() Uint { return 1 }

// Default returns the zero value.
func (Uint) Default() Uint { return 0 }

// Add returns a + b.
func (a Uint) Add(b Uint) Uint { return a + b }

// Sub returns a - b.
func (a Uint) Sub(b Uint) Uint { return a - b }

// Mul returns a * b.
func (a Uint) Mul(b Uint) Uint { return a * b }

// Neg returns -a modulo 2^n.
func (a Uint) Neg() Uint { return -a }

// Equal reports a == b.
func (a Uint) Equal(b Uint) bool { return a == b }

// String formats a in decimal.
func (a Uint) String() string { return strconv.FormatUint(uint64(a), 10) }

// invFloat computes 1/v for floating scalars, rejecting exact zero.
func invFloat[F Float64 | Float32](v F) (F, error) {
	if v == 0 {
		return 0, ErrDivisionByZero
	}
	return 1 / v, nil
}
