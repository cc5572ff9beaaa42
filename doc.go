// Package lvlalg is a small library of exact-structure linear algebra over
// pluggable number systems: complex numbers, quaternions and matrices whose
// cells are any ring element.
//
// 🚀 What is in lvlalg?
//
//	• Capability traits: Zero, One, Ring, Field, plus ready-made scalars
//	• Complex numbers: arithmetic, conjugate, division, magnitude
//	• Quaternions: Hamilton product, sandwich conjugate, inverse, division
//	• Dense float64 matrices: minors, cofactor determinant, adjugate, inverse,
//	  Cramer's rule and an explicit noise-correction pass
//	• Generic matrices: the same engine over complex, quaternion or integer cells
//
// ✨ Why lvlalg?
//
//   - Exact structure: determinants by cofactor expansion, no pivoting noise
//   - Explicit errors: sentinels matched with errors.Is, no panics on input
//   - Interop: copy to and from gonum's mat.Dense / mat.CDense
//
// Packages:
//
//	algebra/    : traits and scalar element types
//	complexnum/ : complex numbers
//	quaternion/ : quaternions
//	matrix/     : Dense, Generic[T], cofactor kernels, concurrent expansion
//
// Cofactor expansion is O(n!); the library targets small matrices.
//
//	go get github.com/katalvlaran/lvlalg
package lvlalg
