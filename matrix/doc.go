// Package matrix is a small dense linear-algebra kernel over a generic scalar
// field (float32 or float64).
//
// The matrix package provides:
//
//   - Vector[K]: elementwise Add/Sub/Scl, Dot, Norm1/Norm/NormInf, Map, Zip,
//     Reshape into a single-row Matrix.
//   - Matrix[K]: Add/Sub/Scl, MulVec, MulMat, Trace, Transpose, RowEchelon
//     (reduced), Determinant, Inverse, Rank, LU, Projection.
//   - Free functions: LinearCombination, AngleCos, CrossProduct, Lerp.
//   - Converters to and from gonum's mat.Dense / mat.VecDense.
//
// Error policy:
//
//	Operations the caller can recover from (Add/Sub, MapVectors/MapMatrices,
//	Zip, LinearCombination, Inverse, MatrixFrom, LU) return errors matching the
//	sentinels in errors.go via errors.Is. Products, Dot, Trace, AngleCos,
//	CrossProduct and Lerp keep a safe-degenerate contract: a violated shape
//	precondition yields zero or an empty container. Out-of-range indices panic.
//
// Values are exclusively owned and not safe for concurrent mutation.
//
// See the examples in this package for usage patterns.
package matrix
