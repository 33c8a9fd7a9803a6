// SPDX-License-Identifier: MIT
// Package: matrix
// Purpose:
//   Central shape guards shared by the vector and matrix kernels. Every
//   operation validates its operands here before touching any data, so the
//   error path never leaves a receiver partially mutated.

package matrix

import "fmt"

// ValidateSameSize ensures vectors a and b hold the same number of elements.
// Returns a *ShapeError tagged with op on mismatch.
// Complexity: O(1).
func ValidateSameSize[K Scalar](op string, a, b *Vector[K]) error {
	if a.Size() != b.Size() {
		return shapeErrorf(op, a.Shape(), b.Shape())
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Returns a *ShapeError tagged with op on mismatch.
// Complexity: O(1).
func ValidateSameShape[K Scalar](op string, a, b *Matrix[K]) error {
	if a.Shape() != b.Shape() {
		return shapeErrorf(op, a.Shape(), b.Shape())
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows() so that a×b is defined.
// Complexity: O(1).
func ValidateMulCompatible[K Scalar](op string, a, b *Matrix[K]) error {
	if a.Cols() != b.Rows() {
		return shapeErrorf(op, Shape{a.Cols(), b.Cols()}, b.Shape())
	}

	return nil
}

// ValidateSquare ensures m is square. A 0×0 matrix counts as square.
// Complexity: O(1).
func ValidateSquare[K Scalar](op string, m *Matrix[K]) error {
	if m.Rows() != m.Cols() {
		return shapeErrorf(op, Shape{m.Rows(), m.Rows()}, m.Shape())
	}

	return nil
}

// ValidateRows rejects jagged nested input: every row must match the first row's length.
// Complexity: O(rows).
func ValidateRows[K Scalar](op string, rows [][]K) error {
	if len(rows) == 0 {
		return nil
	}
	cols := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return shapeErrorf(fmt.Sprintf("%s: row %d", op, i), Shape{1, cols}, Shape{1, len(rows[i])})
		}
	}

	return nil
}
