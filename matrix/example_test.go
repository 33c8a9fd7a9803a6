package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
)

// ExampleMatrix_Inverse inverts a 2×2 matrix and reports a singular one.
func ExampleMatrix_Inverse() {
	m := matrix.MustMatrix([][]float64{{1, 2}, {3, 4}})
	inv, err := m.Inverse()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(inv)

	_, err = matrix.MustMatrix([][]float64{{1, 2}, {2, 4}}).Inverse()
	fmt.Println(errors.Is(err, matrix.ErrSingular), err)
	// Output:
	// [[-2, 1], [1.5, -0.5]]
	// true Inverse: matrix: singular matrix
}

// ExampleMatrix_Determinant evaluates a 3×3 determinant by cofactor expansion.
func ExampleMatrix_Determinant() {
	m := matrix.MustMatrix([][]float64{{8, 5, -2}, {4, 7, 20}, {7, 6, 1}})
	fmt.Println(m.Determinant())
	// Output: -174
}

// ExampleMatrix_RowEchelon reduces a rank-deficient matrix.
func ExampleMatrix_RowEchelon() {
	m := matrix.MustMatrix([][]float64{{1, 2}, {2, 4}})
	fmt.Println(m.RowEchelon(), "rank", m.Rank())
	// Output: [[1, 2], [0, 0]] rank 1
}

// ExampleMatrix_MulMat multiplies a 2×2 by a 2×3 matrix.
func ExampleMatrix_MulMat() {
	a := matrix.MustMatrix([][]float64{{3, -5}, {6, 8}})
	b := matrix.MustMatrix([][]float64{{2, 1, 2}, {4, 2, 2}})
	fmt.Println(a.MulMat(b), a.MulMat(b).Shape())
	// Output: [[-14, -7, -4], [44, 22, 28]] 2x3
}

// ExampleVector_Add shows that a mismatched operand is reported, not applied.
func ExampleVector_Add() {
	u := matrix.VectorFrom([]float64{2, 3})
	fmt.Println(u.Add(matrix.VectorFrom([]float64{5, 7})), u)
	fmt.Println(u.Add(matrix.VectorFrom([]float64{1})), u)
	// Output:
	// <nil> [7, 10]
	// Vector.Add: matrix: shape mismatch: expected 1x2, got 1x1 [7, 10]
}

// ExampleCrossProduct combines the free vector functions.
func ExampleCrossProduct() {
	u := matrix.VectorFrom([]float64{1, 2, 3})
	v := matrix.VectorFrom([]float64{4, 5, 6})
	fmt.Println(matrix.CrossProduct(u, v))
	fmt.Printf("cos=%.6f |u|=%.4f\n", matrix.AngleCos(u, v), u.Norm())

	w, _ := matrix.LinearCombination([]*matrix.Vector[float64]{u, v}, []float64{2, -1})
	fmt.Println(w)
	// Output:
	// [-3, 6, -3]
	// cos=0.974632 |u|=3.7417
	// [-2, -1, 0]
}
