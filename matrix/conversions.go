// Package matrix provides converters between the engine's containers and
// gonum's dense types, for callers that hand results to gonum routines
// (decompositions, solvers) or bring gonum data into the engine.
package matrix

import "gonum.org/v1/gonum/mat"

const (
	opToGonum       = "ToGonum"
	opVectorToGonum = "VectorToGonum"
)

// ToGonum copies m into a new *mat.Dense.
// gonum has no zero-sized dense matrices, so an empty m yields ErrEmptyInput.
//
// Time Complexity: O(r*c)
func ToGonum[K Scalar](m *Matrix[K]) (*mat.Dense, error) {
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return nil, matrixErrorf(opToGonum, ErrEmptyInput)
	}
	data := make([]float64, 0, rows*cols)
	for _, row := range m.rows {
		for _, x := range row {
			data = append(data, float64(x))
		}
	}

	return mat.NewDense(rows, cols, data), nil
}

// FromGonum copies any gonum matrix into a new Matrix.
//
// Time Complexity: O(r*c)
func FromGonum[K Scalar](a mat.Matrix) *Matrix[K] {
	rows, cols := a.Dims()
	out := NewMatrix[K](rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.rows[i][j] = K(a.At(i, j))
		}
	}

	return out
}

// VectorToGonum copies v into a new *mat.VecDense; an empty v yields ErrEmptyInput.
func VectorToGonum[K Scalar](v *Vector[K]) (*mat.VecDense, error) {
	if v.Size() == 0 {
		return nil, matrixErrorf(opVectorToGonum, ErrEmptyInput)
	}
	data := make([]float64, v.Size())
	for i, x := range v.data {
		data[i] = float64(x)
	}

	return mat.NewVecDense(len(data), data), nil
}

// VectorFromGonum copies a gonum vector into a new Vector.
func VectorFromGonum[K Scalar](v mat.Vector) *Vector[K] {
	out := NewVector[K](v.Len())
	for i := range out.data {
		out.data[i] = K(v.AtVec(i))
	}

	return out
}
