// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors and the ShapeError
// carrier used across the matrix package. Recoverable conditions are returned
// as errors and tests MUST check them via errors.Is / errors.As. Panics are
// reserved for programmer errors (index out of range, negative dimensions).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operations tag the sentinel with their name via
// matrixErrorf, e.g. "Inverse: matrix: singular matrix"; callers still match
// with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// empty input -> shape mismatch -> numeric failure (singular).

var (
	// ErrShapeMismatch indicates incompatible shapes between operands,
	// e.g., Add/Sub of different shapes or jagged rows in MatrixFrom.
	// It is usually carried by a *ShapeError with the offending shapes.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrEmptyInput is returned when an operation needs data but got none
	// (no vectors or no coefficients for LinearCombination, 0×0 for LU).
	ErrEmptyInput = errors.New("matrix: empty input")

	// ErrSingular is returned when elimination finds no usable pivot in a column.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrIndexOutOfRange indicates that an index is outside valid bounds.
	// It is never returned: At/Set panic with it, since a bad index is a bug.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrBadShape is raised (via panic) when a constructor receives a negative dimension.
	ErrBadShape = errors.New("matrix: invalid shape")
)

// Shape is a (rows, cols) pair. Vectors report (1, size), or (0, 0) when empty.
type Shape [2]int

// String renders the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s[0], s[1]) }

// ShapeError reports the shapes involved in a failed shape check.
// errors.Is(err, ErrShapeMismatch) is true for every *ShapeError.
type ShapeError struct {
	Op       string // operation that rejected the operands
	Expected Shape  // shape the operation required
	Actual   Shape  // shape it received
}

// Error implements error.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %v: expected %v, got %v", e.Op, ErrShapeMismatch, e.Expected, e.Actual)
}

// Unwrap exposes ErrShapeMismatch to errors.Is.
func (e *ShapeError) Unwrap() error { return ErrShapeMismatch }

// shapeErrorf builds a *ShapeError for op.
func shapeErrorf(op string, expected, actual Shape) error {
	return &ShapeError{Op: op, Expected: expected, Actual: actual}
}

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexPanic aborts on an out-of-range access with a tagged ErrIndexOutOfRange.
func indexPanic(method string, idx ...int) {
	panic(fmt.Errorf("%s%v: %w", method, idx, ErrIndexOutOfRange))
}
