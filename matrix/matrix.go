// SPDX-License-Identifier: MIT
// Package matrix: Matrix is the 2-D container of the engine.
//
// Rows are stored as independent equal-length buffers ([][]K) so elimination
// kernels can swap two rows by exchanging slice headers in O(1). A Matrix owns
// its rows exclusively; every derived result is freshly allocated.

package matrix

import (
	"iter"
	"strings"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opSum        = "Sum"
	opDiff       = "Diff"
	opMap        = "MapMatrices"
	opZip        = "Zip"
	opMatrixFrom = "MatrixFrom"
	opNewMatrix  = "NewMatrix"
)

// Matrix is a dense row-major matrix of K.
// Invariant: all rows have the same length.
type Matrix[K Scalar] struct {
	rows [][]K
}

// NewMatrix returns a zero-filled rows×cols matrix.
// A matrix with zero rows has shape (0, 0). Panics with ErrBadShape on negative dimensions.
func NewMatrix[K Scalar](rows, cols int) *Matrix[K] {
	if rows < 0 || cols < 0 {
		panic(matrixErrorf(opNewMatrix, ErrBadShape))
	}
	m := &Matrix[K]{rows: make([][]K, rows)}
	for i := range m.rows {
		m.rows[i] = make([]K, cols)
	}

	return m
}

// MatrixFrom copies nested rows into a new matrix.
// Jagged input is rejected with a *ShapeError naming the first offending row.
func MatrixFrom[K Scalar](rows [][]K) (*Matrix[K], error) {
	if err := ValidateRows(opMatrixFrom, rows); err != nil {
		return nil, err
	}
	m := &Matrix[K]{rows: make([][]K, len(rows))}
	for i, row := range rows {
		m.rows[i] = make([]K, len(row))
		copy(m.rows[i], row)
	}

	return m, nil
}

// MustMatrix is MatrixFrom for literals known to be well-formed; it panics on error.
func MustMatrix[K Scalar](rows [][]K) *Matrix[K] {
	m, err := MatrixFrom(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// RowMatrix copies values into a single-row matrix of shape (1, len(values)).
func RowMatrix[K Scalar](values []K) *Matrix[K] {
	row := make([]K, len(values))
	copy(row, values)

	return &Matrix[K]{rows: [][]K{row}}
}

// Identity returns a size×size matrix with diagonal on the main diagonal and zero elsewhere.
// Size 0 yields the empty matrix.
func Identity[K Scalar](size int, diagonal K) *Matrix[K] {
	m := NewMatrix[K](size, size)
	for i := 0; i < size; i++ {
		m.rows[i][i] = diagonal
	}

	return m
}

// Rows returns the number of rows.
func (m *Matrix[K]) Rows() int { return len(m.rows) }

// Cols returns the length of the first row, or 0 for a matrix without rows.
func (m *Matrix[K]) Cols() int {
	if len(m.rows) == 0 {
		return 0
	}

	return len(m.rows[0])
}

// Shape returns (Rows(), Cols()); (0, 0) when there are no rows.
func (m *Matrix[K]) Shape() Shape { return Shape{m.Rows(), m.Cols()} }

// IsSquare reports whether Rows() == Cols().
func (m *Matrix[K]) IsSquare() bool { return m.Rows() == m.Cols() }

// At returns m[i][j]. Panics with ErrIndexOutOfRange on a bad index.
func (m *Matrix[K]) At(i, j int) K {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		indexPanic("Matrix.At", i, j)
	}

	return m.rows[i][j]
}

// Set assigns m[i][j] = x. Panics with ErrIndexOutOfRange on a bad index.
func (m *Matrix[K]) Set(i, j int, x K) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		indexPanic("Matrix.Set", i, j)
	}
	m.rows[i][j] = x
}

// Row returns a copy of row i. Panics with ErrIndexOutOfRange on a bad index.
func (m *Matrix[K]) Row(i int) []K {
	if i < 0 || i >= m.Rows() {
		indexPanic("Matrix.Row", i)
	}
	out := make([]K, len(m.rows[i]))
	copy(out, m.rows[i])

	return out
}

// Values returns a deep copy of the rows.
func (m *Matrix[K]) Values() [][]K {
	return m.Clone().rows
}

// Clone returns a deep copy of the matrix.
func (m *Matrix[K]) Clone() *Matrix[K] {
	out := &Matrix[K]{rows: make([][]K, len(m.rows))}
	for i, row := range m.rows {
		out.rows[i] = make([]K, len(row))
		copy(out.rows[i], row)
	}

	return out
}

// Equal reports whether both matrices have the same shape and identical entries.
func (m *Matrix[K]) Equal(other *Matrix[K]) bool {
	if m.Shape() != other.Shape() {
		return false
	}
	for i, row := range m.rows {
		for j, x := range row {
			if other.rows[i][j] != x {
				return false
			}
		}
	}

	return true
}

// String renders the matrix as "[[a, b], [c, d]]".
func (m *Matrix[K]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, row := range m.rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString((&Vector[K]{data: row}).String())
	}
	sb.WriteByte(']')

	return sb.String()
}

// Fill overwrites every entry with value.
func (m *Matrix[K]) Fill(value K) {
	for _, row := range m.rows {
		for j := range row {
			row[j] = value
		}
	}
}

// IterRows iterates row-major over (row index, row copy) pairs.
func (m *Matrix[K]) IterRows() iter.Seq2[int, []K] {
	return func(yield func(int, []K) bool) {
		for i := range m.rows {
			if !yield(i, m.Row(i)) {
				return
			}
		}
	}
}

// IterCols iterates column-major: down column 0, then down column 1, and so on.
func (m *Matrix[K]) IterCols() iter.Seq[K] {
	return func(yield func(K) bool) {
		rows, cols := m.Rows(), m.Cols()
		for j := 0; j < cols; j++ {
			for i := 0; i < rows; i++ {
				if !yield(m.rows[i][j]) {
					return
				}
			}
		}
	}
}

// Zip iterates row-major over paired entries of m and other.
// Fails with a *ShapeError when the shapes differ.
func (m *Matrix[K]) Zip(other *Matrix[K]) (iter.Seq2[K, K], error) {
	if err := ValidateSameShape(opZip, m, other); err != nil {
		return nil, err
	}

	return func(yield func(K, K) bool) {
		for i, row := range m.rows {
			for j, x := range row {
				if !yield(x, other.rows[i][j]) {
					return
				}
			}
		}
	}, nil
}

// MapMatrices returns a new matrix with out[i][j] = fn(a[i][j], b[i][j]).
// Fails with a *ShapeError when the shapes differ.
func MapMatrices[K Scalar](a, b *Matrix[K], fn func(x, y K) K) (*Matrix[K], error) {
	if err := ValidateSameShape(opMap, a, b); err != nil {
		return nil, err
	}
	out := NewMatrix[K](a.Rows(), a.Cols())
	for i, row := range a.rows {
		for j, x := range row {
			out.rows[i][j] = fn(x, b.rows[i][j])
		}
	}

	return out, nil
}
