// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and comparison utilities for the kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
)

// tol is the absolute tolerance for float comparisons against literals.
const tol = 1e-9

// mat64 builds a float64 matrix from a literal, failing the test on jagged input.
func mat64(t testing.TB, rows [][]float64) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.MatrixFrom(rows)
	require.NoError(t, err)

	return m
}

// vec64 builds a float64 vector from values.
func vec64(values ...float64) *matrix.Vector[float64] {
	return matrix.VectorFrom(values)
}

// requireMatrixInDelta compares m against want entry by entry within delta.
func requireMatrixInDelta(t testing.TB, want [][]float64, m *matrix.Matrix[float64], delta float64) {
	t.Helper()
	require.Equal(t, matrix.Shape{len(want), colsOf(want)}, m.Shape(), "shape")
	for i := range want {
		for j := range want[i] {
			require.InDeltaf(t, want[i][j], m.At(i, j), delta, "entry [%d,%d]", i, j)
		}
	}
}

// requireVectorInDelta compares v against want element by element within delta.
func requireVectorInDelta(t testing.TB, want []float64, v *matrix.Vector[float64], delta float64) {
	t.Helper()
	require.Equal(t, len(want), v.Size(), "size")
	for i := range want {
		require.InDeltaf(t, want[i], v.At(i), delta, "element [%d]", i)
	}
}

func colsOf(rows [][]float64) int {
	if len(rows) == 0 {
		return 0
	}

	return len(rows[0])
}

// randomMatrix fills an r×c matrix with values in [-10, 10) from a fixed seed.
func randomMatrix(r, c int, seed int64) *matrix.Matrix[float64] {
	rng := rand.New(rand.NewSource(seed))
	m := matrix.NewMatrix[float64](r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, rng.Float64()*20-10)
		}
	}

	return m
}

// mustGonum converts m for use as an oracle.
func mustGonum(t testing.TB, m *matrix.Matrix[float64]) *mat.Dense {
	t.Helper()
	d, err := matrix.ToGonum(m)
	require.NoError(t, err)

	return d
}
