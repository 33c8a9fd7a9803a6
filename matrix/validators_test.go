// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the shape guards.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// TestValidateSameShape covers matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    *matrix.Matrix[float64]
		wantErr error
	}{
		{"equal 2x3", matrix.NewMatrix[float64](2, 3), matrix.NewMatrix[float64](2, 3), nil},
		{"both empty", matrix.NewMatrix[float64](0, 0), matrix.NewMatrix[float64](0, 0), nil},
		{"row mismatch", matrix.NewMatrix[float64](2, 3), matrix.NewMatrix[float64](3, 3), matrix.ErrShapeMismatch},
		{"col mismatch", matrix.NewMatrix[float64](2, 3), matrix.NewMatrix[float64](2, 4), matrix.ErrShapeMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape("op", tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

// TestValidateSquare covers empty, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSquare("op", matrix.NewMatrix[float64](0, 0)))
	require.NoError(t, matrix.ValidateSquare("op", matrix.NewMatrix[float64](1, 1)))
	require.NoError(t, matrix.ValidateSquare("op", matrix.NewMatrix[float64](3, 3)))

	err := matrix.ValidateSquare("Det", matrix.NewMatrix[float64](2, 3))
	require.EqualError(t, err, "Det: matrix: shape mismatch: expected 2x2, got 2x3")
}

func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	a := matrix.NewMatrix[float64](2, 3)
	require.NoError(t, matrix.ValidateMulCompatible("Mul", a, matrix.NewMatrix[float64](3, 5)))

	err := matrix.ValidateMulCompatible("Mul", a, matrix.NewMatrix[float64](2, 5))
	var se *matrix.ShapeError
	require.True(t, errors.As(err, &se))
	require.Equal(t, matrix.Shape{3, 5}, se.Expected)
	require.Equal(t, matrix.Shape{2, 5}, se.Actual)
}

func TestValidateSameSize(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSameSize("op", vec64(1, 2), vec64(3, 4)))
	require.NoError(t, matrix.ValidateSameSize("op", vec64(), vec64()))
	require.ErrorIs(t, matrix.ValidateSameSize("op", vec64(1), vec64(3, 4)), matrix.ErrShapeMismatch)
}

func TestValidateRows(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateRows[float64]("op", nil))
	require.NoError(t, matrix.ValidateRows("op", [][]float64{{1, 2}, {3, 4}}))
	require.NoError(t, matrix.ValidateRows("op", [][]float64{{}, {}}))

	err := matrix.ValidateRows("op", [][]float64{{1, 2}, {3, 4, 5}})
	require.EqualError(t, err, "op: row 1: matrix: shape mismatch: expected 1x2, got 1x3")
}
