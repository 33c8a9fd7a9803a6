// SPDX-License-Identifier: MIT

package matrix

const opLU = "LU"

// LUFactors holds a factorization P·A = L·U.
// L is unit lower triangular, U is upper triangular, and row i of P·A is
// row Pivot[i] of A.
type LUFactors[K Scalar] struct {
	L, U     *Matrix[K]
	Pivot    []int
	Sign     int  // +1 or -1: parity of the row permutation
	singular bool // some column had no usable pivot
}

// Singular reports whether elimination met a column without a usable pivot.
func (f *LUFactors[K]) Singular() bool { return f.singular }

// Det returns Sign·Π U[i][i], or zero for a singular factorization.
func (f *LUFactors[K]) Det() K {
	var zero K
	if f.singular {
		return zero
	}
	det := K(f.Sign)
	for i := 0; i < f.U.Rows(); i++ {
		det *= f.U.rows[i][i]
	}

	return det
}

// LU factors a square matrix with Doolittle elimination and partial pivoting.
//
// Implementation:
//   - Stage 1: validate (square, non-empty); clone the input.
//   - Stage 2: for each column k pick the row with the largest |a[i][k]|, i >= k,
//     swap it up (tracking Pivot and Sign), then store the multipliers
//     a[i][k]/a[k][k] below the diagonal while updating the trailing block.
//   - Stage 3: split the packed result into L (unit diagonal) and U.
//
// A column whose best candidate is zero (within eps) marks the factorization
// singular; elimination continues so L and U are still well-formed.
//
// Errors:
//   - ErrEmptyInput for a 0×0 matrix, *ShapeError for a non-square one.
//
// Complexity: Time O(n³), Space O(n²).
func (m *Matrix[K]) LU(opts ...Option) (*LUFactors[K], error) {
	if err := ValidateSquare(opLU, m); err != nil {
		return nil, err
	}
	n := m.Rows()
	if n == 0 {
		return nil, matrixErrorf(opLU, ErrEmptyInput)
	}
	eps := gatherOptions(opts...).eps

	a := m.Clone()
	res := &LUFactors[K]{Pivot: make([]int, n), Sign: 1}
	for i := range res.Pivot {
		res.Pivot[i] = i
	}

	var (
		i, j, k, p int
		f          K
	)
	for k = 0; k < n; k++ {
		p = k
		for i = k + 1; i < n; i++ {
			if Abs(a.rows[i][k]) > Abs(a.rows[p][k]) {
				p = i
			}
		}
		if isZero(a.rows[p][k], eps) {
			res.singular = true
			continue
		}
		if p != k {
			a.rows[p], a.rows[k] = a.rows[k], a.rows[p]
			res.Pivot[p], res.Pivot[k] = res.Pivot[k], res.Pivot[p]
			res.Sign = -res.Sign
		}
		for i = k + 1; i < n; i++ {
			f = a.rows[i][k] / a.rows[k][k]
			a.rows[i][k] = f
			for j = k + 1; j < n; j++ {
				a.rows[i][j] -= f * a.rows[k][j]
			}
		}
	}

	res.L = Identity[K](n, 1)
	res.U = NewMatrix[K](n, n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if j < i {
				res.L.rows[i][j] = a.rows[i][j]
			} else {
				res.U.rows[i][j] = a.rows[i][j]
			}
		}
	}

	return res, nil
}
