// Package matrix offers small exact-arithmetic matrices over float64 and
// over any algebra.Ring element type.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with Minor, Det, Cofactor, Adjugate,
//     Inverse, Transpose, ReplaceColumn/ReplaceRow, SolveCramer and an
//     explicit in-place Correct pass for floating-point noise.
//   - Generic[T]: the same engine written once against algebra.Ring, so
//     complex, quaternion, integer and float matrices share one
//     implementation (Det via Zero/One/Neg; InverseGeneric for fields).
//   - DetConcurrent / InverseConcurrent: the first expansion level spread
//     over a bounded errgroup, cancellable through context.Context.
//   - Converters to and from gonum's mat.Dense and mat.CDense.
//
// Determinants use recursive cofactor expansion: exact in structure but
// O(n!) in time. Matrices are meant to be small.
//
// See the examples in this package for usage patterns.
package matrix
