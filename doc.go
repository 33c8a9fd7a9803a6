// Package linalg is a compact dense linear-algebra toolkit: vectors and
// matrices over float32/float64 with the classic operation set.
//
// 🚀 What is in the box?
//
//	• Vectors: add, subtract, scale, dot product, 1/2/∞ norms
//	• Matrices: products, transpose, trace, reduced row-echelon form,
//	  determinant, inverse, rank, LU with partial pivoting
//	• Geometry: cross product, cosine similarity, perspective projection
//	• Interpolation: lerp for scalars, vectors and matrices
//	• Interop: copy to and from gonum's dense types
//
// ✨ Why linalg?
//
//   - Generic - one implementation for float32 and float64
//   - Predictable - shape checks up front, typed errors, no silent NaN
//   - Small - no BLAS, no cgo; a teaching-sized engine you can read in one sitting
//
// Layout:
//
//	matrix/             Vector, Matrix, elimination kernels, free functions
//	internal/document/  YAML/JSON operand documents for the CLI
//	internal/render/    terminal rendering for the CLI
//	cmd/linalg          command-line front end (det, inverse, rank, rref, lu, demo, ...)
//	examples/           runnable programs
//
// Quick example:
//
//	m := matrix.MustMatrix([][]float64{{8, 5, -2}, {4, 7, 20}, {7, 6, 1}})
//	fmt.Println(m.Determinant()) // -174
//
//	go get github.com/katalvlaran/linalg
package linalg
