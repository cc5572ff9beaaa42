// SPDX-License-Identifier: MIT

// Package algebra declares the capability traits an element type must provide
// to take part in generic matrix arithmetic, plus ready-made scalar elements.
//
// 🚀 What is in here?
//
//	Zero / One   : accessors for the additive and multiplicative identities.
//	Ring[T]      : Zero, One, Add, Sub, Mul, Neg, Equal, String.
//	Field[T]     : Ring[T] plus Inv (fails with ErrDivisionByZero on zero).
//	Defaulter[T] : optional Default() used by matrix.NewGeneric.
//
// Scalars:
//
//	Float64, Float32                        : fields.
//	Int32, Int64, Uint32, Uint64, Uint      : rings (no Inv).
//
// Unsigned negation wraps modulo 2^n, so unsigned matrices compute in Z/2^n.
//
// ⚙️ Usage:
//
//	var w algebra.Float64
//	one := w.One()                  // 1
//	s := algebra.Sign[algebra.Int64](3) // -1
//
// Element types live in sibling packages (complexnum, quaternion) and satisfy
// the same traits with value receivers, so the zero value of any element type
// can serve as a witness for its identities.
package algebra
