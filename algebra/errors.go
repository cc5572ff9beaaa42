// SPDX-License-Identifier: MIT
// Package algebra: sentinel error set shared by element types.
// Element packages return these sentinels (optionally wrapped with an
// operation tag); callers match via errors.Is.

package algebra

import "errors"

var (
	// ErrDivisionByZero is returned when a division or inverse is attempted
	// with the additive identity as divisor.
	ErrDivisionByZero = errors.New("algebra: division by zero")
)
