// Package matrix_test contains unit tests for elementwise arithmetic,
// products, trace and transpose.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
)

func TestMatrix_AddSub(t *testing.T) {
	a := mat64(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, a.Add(mat64(t, [][]float64{{7, 4}, {-2, 2}})))
	require.Equal(t, [][]float64{{8, 6}, {1, 6}}, a.Values())

	b := mat64(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, b.Sub(mat64(t, [][]float64{{7, 4}, {-2, 2}})))
	require.Equal(t, [][]float64{{-6, -2}, {5, 2}}, b.Values())
}

func TestMatrix_AddSub_ShapeMismatchLeavesReceiver(t *testing.T) {
	a := mat64(t, [][]float64{{1, 2}, {3, 4}})
	other := mat64(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	require.ErrorIs(t, a.Add(other), matrix.ErrShapeMismatch)
	require.ErrorIs(t, a.Sub(other), matrix.ErrShapeMismatch)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, a.Values())
}

func TestMatrix_Scl(t *testing.T) {
	m := mat64(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	m.Scl(2)
	require.Equal(t, [][]float64{{2, 4, 6}, {8, 10, 12}}, m.Values())
}

func TestSumDiffScaled_DoNotMutate(t *testing.T) {
	a := mat64(t, [][]float64{{1, 2}, {3, 4}})
	b := mat64(t, [][]float64{{4, 3}, {2, 1}})

	s, err := matrix.Sum(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{5, 5}, {5, 5}}, s.Values())

	d, err := matrix.Diff(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-3, -1}, {1, 3}}, d.Values())

	require.Equal(t, [][]float64{{3, 6}, {9, 12}}, matrix.Scaled(a, 3).Values())
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, a.Values())
	require.Equal(t, [][]float64{{4, 3}, {2, 1}}, b.Values())

	_, err = matrix.Sum(a, matrix.NewMatrix[float64](1, 2))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = matrix.Diff(a, matrix.NewMatrix[float64](1, 2))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

func TestMatrix_MulVec(t *testing.T) {
	for _, tc := range []struct {
		name string
		m    [][]float64
		v    []float64
		want []float64
	}{
		{"identity", [][]float64{{1, 0}, {0, 1}}, []float64{4, 2}, []float64{4, 2}},
		{"scale", [][]float64{{2, 0}, {0, 2}}, []float64{4, 2}, []float64{8, 4}},
		{"mixed", [][]float64{{2, -2}, {-2, 2}}, []float64{4, 2}, []float64{4, -4}},
		{"rectangular", [][]float64{{1, 2, 3}, {4, 5, 6}}, []float64{1, 0, -1}, []float64{-2, -2}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := mat64(t, tc.m).MulVec(vec64(tc.v...))
			require.Equal(t, tc.want, got.Values())
		})
	}
}

func TestMatrix_MulVec_MismatchIsEmpty(t *testing.T) {
	got := mat64(t, [][]float64{{2, -2}, {-2, 2}}).MulVec(vec64(4, 2, 3))
	require.Equal(t, 0, got.Size())
}

func TestMatrix_MulMat(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b [][]float64
		want [][]float64
	}{
		{"identity", [][]float64{{1, 0}, {0, 1}}, [][]float64{{1, 0}, {0, 1}}, [][]float64{{1, 0}, {0, 1}}},
		{"left identity", [][]float64{{1, 0}, {0, 1}}, [][]float64{{2, 1}, {4, 2}}, [][]float64{{2, 1}, {4, 2}}},
		{"general", [][]float64{{3, -5}, {6, 8}}, [][]float64{{2, 1}, {4, 2}}, [][]float64{{-14, -7}, {44, 22}}},
		// (2×2)·(2×3) is defined: result is 2×3.
		{"rectangular", [][]float64{{3, -5}, {6, 8}}, [][]float64{{2, 1, 2}, {4, 2, 2}}, [][]float64{{-14, -7, -4}, {44, 22, 28}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := mat64(t, tc.a).MulMat(mat64(t, tc.b))
			require.Equal(t, tc.want, got.Values())
		})
	}
}

func TestMatrix_MulMat_MismatchIsEmpty(t *testing.T) {
	got := mat64(t, [][]float64{{2, 1, 2}, {4, 2, 2}}).MulMat(mat64(t, [][]float64{{3, -5}, {6, 8}}))
	require.Equal(t, matrix.Shape{0, 0}, got.Shape())
}

func TestMatrix_MulMat_IdentityNeutral(t *testing.T) {
	m := randomMatrix(5, 5, 7)
	id := matrix.Identity[float64](5, 1)
	require.True(t, id.MulMat(m).Equal(m))
	require.True(t, m.MulMat(id).Equal(m))
}

func TestMatrix_MulMat_AgainstGonum(t *testing.T) {
	a := randomMatrix(4, 6, 1)
	b := randomMatrix(6, 3, 2)

	var want mat.Dense
	want.Mul(mustGonum(t, a), mustGonum(t, b))

	got := a.MulMat(b)
	r, c := want.Dims()
	require.Equal(t, matrix.Shape{r, c}, got.Shape())
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.InDelta(t, want.At(i, j), got.At(i, j), tol)
		}
	}
}

func TestMatrix_Trace(t *testing.T) {
	require.Equal(t, 2.0, mat64(t, [][]float64{{1, 0}, {0, 1}}).Trace())
	require.Equal(t, 9.0, mat64(t, [][]float64{{2, -5, 0}, {4, 3, 7}, {-2, 3, 4}}).Trace())
	require.Equal(t, -21.0, mat64(t, [][]float64{{-2, -8, 4}, {1, -23, 4}, {0, 6, 4}}).Trace())
	require.Equal(t, 0.0, mat64(t, [][]float64{{1, 2, 3}, {4, 5, 6}}).Trace())
}

func TestMatrix_Transpose(t *testing.T) {
	require.Equal(t, [][]float64{{1, 3}, {2, 1}}, mat64(t, [][]float64{{1, 2}, {3, 1}}).Transpose().Values())
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, mat64(t, [][]float64{{1, 2, 3}, {4, 5, 6}}).Transpose().Values())
	require.Equal(t,
		[][]float64{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}},
		mat64(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}).Transpose().Values())
}

func TestMatrix_TransposeInvolution(t *testing.T) {
	for _, m := range []*matrix.Matrix[float64]{
		randomMatrix(3, 5, 11),
		randomMatrix(1, 4, 12),
		randomMatrix(6, 6, 13),
	} {
		require.True(t, m.Transpose().Transpose().Equal(m))
	}
}

func TestMatrix_Lerp(t *testing.T) {
	e1 := mat64(t, [][]float64{{1, 0, 0}, {0, 0, 0}})
	e2 := mat64(t, [][]float64{{0, 1, 0}, {1, 0, 1}})
	require.True(t, matrix.Lerp(e1, e2, 0).Equal(e1))
	require.True(t, matrix.Lerp(e1, e2, 1).Equal(e2))
	require.Equal(t, [][]float64{{0.5, 0.5, 0}, {0.5, 0, 0.5}}, matrix.Lerp(e1, e2, 0.5).Values())

	got := matrix.Lerp(mat64(t, [][]float64{{2, 1}, {3, 4}}), mat64(t, [][]float64{{20, 10}, {30, 40}}), 0.5)
	requireMatrixInDelta(t, [][]float64{{11, 5.5}, {16.5, 22}}, got, tol)

	bad := matrix.Lerp(mat64(t, [][]float64{{2, 1, 0}, {3, 4, 0}}), mat64(t, [][]float64{{20, 10}, {30, 40}}), 0.3)
	require.Equal(t, matrix.Shape{0, 0}, bad.Shape())
}
