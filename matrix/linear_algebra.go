// SPDX-License-Identifier: MIT
// Package matrix: elimination kernels.
//
// Purpose:
//   - RowEchelon: reduced row-echelon form by Gauss–Jordan with a lead-column scan.
//   - Inverse:    Gauss–Jordan on the augmented pair [A | I].
//   - Rank:       Gaussian elimination with maximal-magnitude partial pivoting.
//   - Determinant: cofactor expansion for 2×2..4×4, LU with partial pivoting otherwise.
//
// Notes:
//   - All kernels work on a private clone; the receiver is never mutated.
//   - A pivot is "zero" when isZero(x, eps) holds; eps defaults to 0 (exact test).
//     An all-zero column is therefore skipped, never divided by.

package matrix

// Operation name constants for the elimination kernels.
const (
	opInverse     = "Inverse"
	opDeterminant = "Determinant"
)

// cofactorMax is the largest size handled by cofactor expansion; larger (and 1×1)
// matrices go through LU.
const cofactorMax = 4

// RowEchelon returns the reduced row-echelon form (RREF) of m.
//
// Implementation:
//   - Keep a lead column. For each target row r, scan downward from r for the
//     first entry in column lead that is not zero. When the column is exhausted,
//     advance lead and rescan from r; when columns run out, stop and return the
//     partial result.
//   - Swap the found row into position r, divide it by the pivot (the pivot
//     becomes exactly 1), then subtract val*pivotRow from every other row,
//     where val is that row's entry in column lead. Advance lead.
//
// Behavior highlights:
//   - First-nonzero pivot choice (not magnitude-based); ties resolve to the topmost row.
//   - Every pivot column ends up with 1 on the pivot and 0 elsewhere.
//
// Complexity: Time O(r²·c), Space O(r·c) for the result.
func (m *Matrix[K]) RowEchelon(opts ...Option) *Matrix[K] {
	eps := gatherOptions(opts...).eps
	out := m.Clone()
	gaussJordan(out, nil, eps)

	return out
}

// ReducedRowEchelon is an alias of RowEchelon.
func (m *Matrix[K]) ReducedRowEchelon(opts ...Option) *Matrix[K] {
	return m.RowEchelon(opts...)
}

// gaussJordan reduces work to RREF in place, replaying every row operation on
// mirror when mirror is non-nil. It reports whether every row received a pivot.
func gaussJordan[K Scalar](work, mirror *Matrix[K], eps float64) bool {
	rows, cols := work.Rows(), work.Cols()
	lead := 0
	var (
		i, j  int
		pivot K
		val   K
	)
	for r := 0; r < rows; r++ {
		if lead >= cols {
			return false
		}
		// Lead-column scan: first row at or below r with a usable entry.
		i = r
		for isZero(work.rows[i][lead], eps) {
			i++
			if i == rows {
				i = r
				lead++
				if lead == cols {
					return false
				}
			}
		}

		work.rows[i], work.rows[r] = work.rows[r], work.rows[i]
		if mirror != nil {
			mirror.rows[i], mirror.rows[r] = mirror.rows[r], mirror.rows[i]
		}

		// Normalize the pivot row.
		pivot = work.rows[r][lead]
		for j = 0; j < cols; j++ {
			work.rows[r][j] /= pivot
		}
		if mirror != nil {
			for j = range mirror.rows[r] {
				mirror.rows[r][j] /= pivot
			}
		}

		// Eliminate column lead from every other row.
		for i = 0; i < rows; i++ {
			if i == r {
				continue
			}
			val = work.rows[i][lead]
			for j = 0; j < cols; j++ {
				work.rows[i][j] -= val * work.rows[r][j]
			}
			if mirror != nil {
				for j = range mirror.rows[i] {
					mirror.rows[i][j] -= val * mirror.rows[r][j]
				}
			}
		}
		lead++
	}

	return true
}

// Inverse computes m⁻¹ by Gauss–Jordan elimination on [m | I].
//
// Behavior highlights:
//   - Non-square or 0×0 input returns the empty 0×0 matrix and a nil error.
//   - The pivot loop is the one RowEchelon uses; each row swap, normalization
//     and elimination is applied to the working copy and to the identity-seeded
//     result simultaneously.
//
// Errors:
//   - ErrSingular (tagged "Inverse") when a column has no pivot candidate in the
//     remaining rows.
//
// Complexity: Time O(n³), Space O(n²).
func (m *Matrix[K]) Inverse(opts ...Option) (*Matrix[K], error) {
	n := m.Rows()
	if !m.IsSquare() || n == 0 {
		return NewMatrix[K](0, 0), nil
	}
	eps := gatherOptions(opts...).eps

	work := m.Clone()
	out := Identity[K](n, 1)
	if !gaussJordan(work, out, eps) {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	return out, nil
}

// Rank returns the number of nonzero rows of the (non-reduced) row-echelon
// form obtained by Gaussian elimination with maximal-magnitude partial pivoting.
//
// Implementation:
//   - For the active column k, pick the row among h..rows-1 with the largest |x|
//     (first one wins on ties). A zero maximum means the column holds no pivot:
//     advance k. Otherwise swap it to row h, clear column k below it, and advance
//     both h and k. The final h is the rank.
//
// Complexity: Time O(r²·c), Space O(r·c).
func (m *Matrix[K]) Rank(opts ...Option) int {
	eps := gatherOptions(opts...).eps
	rows, cols := m.Rows(), m.Cols()
	work := m.Clone()

	var (
		h, k, i, j, iMax int
		f                K
	)
	for h < rows && k < cols {
		iMax = h
		for i = h + 1; i < rows; i++ {
			if Abs(work.rows[i][k]) > Abs(work.rows[iMax][k]) {
				iMax = i
			}
		}
		if isZero(work.rows[iMax][k], eps) {
			k++
			continue
		}
		work.rows[h], work.rows[iMax] = work.rows[iMax], work.rows[h]
		for i = h + 1; i < rows; i++ {
			f = work.rows[i][k] / work.rows[h][k]
			work.rows[i][k] = 0
			for j = k + 1; j < cols; j++ {
				work.rows[i][j] -= work.rows[h][j] * f
			}
		}
		h++
		k++
	}

	return h
}

// Determinant returns det(m).
//
// Behavior highlights:
//   - 2×2: ad − bc.
//   - 3×3: cofactor expansion along the first row using 2×2 minors.
//   - 4×4: cofactor expansion along the first row using 3×3 minors.
//   - 1×1 and n ≥ 5: LU factorization with partial pivoting (0 when singular).
//   - Non-square and 0×0 inputs return zero.
//
// Complexity: O(n!) bounded by n ≤ 4 for cofactors; O(n³) via LU.
func (m *Matrix[K]) Determinant(opts ...Option) K {
	var zero K
	n := m.Rows()
	if !m.IsSquare() || n == 0 {
		return zero
	}
	if n >= 2 && n <= cofactorMax {
		return cofactor(m.rows)
	}
	lu, err := m.LU(opts...)
	if err != nil {
		return zero
	}

	return lu.Det()
}

// cofactor expands det along the first row with alternating signs.
// rows must be square with 2 <= len(rows) <= cofactorMax.
func cofactor[K Scalar](rows [][]K) K {
	n := len(rows)
	if n == 2 {
		return rows[0][0]*rows[1][1] - rows[0][1]*rows[1][0]
	}
	var acc K
	sign := K(1)
	for col := 0; col < n; col++ {
		acc += sign * rows[0][col] * cofactor(minor(rows, col))
		sign = -sign
	}

	return acc
}

// minor drops row 0 and column col.
func minor[K Scalar](rows [][]K, col int) [][]K {
	n := len(rows)
	out := make([][]K, 0, n-1)
	for i := 1; i < n; i++ {
		row := make([]K, 0, n-1)
		row = append(row, rows[i][:col]...)
		row = append(row, rows[i][col+1:]...)
		out = append(out, row)
	}

	return out
}
