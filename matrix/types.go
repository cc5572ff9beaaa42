// SPDX-License-Identifier: MIT

// Package matrix: shared shape abstraction.
// Both the fixed float64 matrix (*Dense) and the generic element matrix
// (*Generic[T]) expose their dimensions through Shape, so a single set of
// validators guards every kernel in the package.
package matrix

// Shape is implemented by every matrix type in this package.
// Complexity notes: both methods are O(1).
type Shape interface {
	// Rows returns the number of rows (height).
	Rows() int

	// Cols returns the number of columns (width).
	Cols() int
}
