// SPDX-License-Identifier: MIT
// Package matrix: elementwise arithmetic, products, trace and transpose.
//
// In-place subject operations (Add, Sub, Scl) mutate the receiver only after
// shape validation succeeds. Products and Trace follow the safe-degenerate
// policy: a shape precondition violation yields an empty result or zero
// instead of an error. Sum, Diff and Scaled allocate fresh results.

package matrix

// Add adds other into m elementwise. On shape mismatch m is left unchanged
// and a *ShapeError is returned.
// Complexity: O(r*c).
func (m *Matrix[K]) Add(other *Matrix[K]) error {
	if err := ValidateSameShape(opAdd, m, other); err != nil {
		return err
	}
	for i, row := range m.rows {
		src := other.rows[i]
		for j := range row {
			row[j] += src[j]
		}
	}

	return nil
}

// Sub subtracts other from m elementwise. On shape mismatch m is left unchanged
// and a *ShapeError is returned.
// Complexity: O(r*c).
func (m *Matrix[K]) Sub(other *Matrix[K]) error {
	if err := ValidateSameShape(opSub, m, other); err != nil {
		return err
	}
	for i, row := range m.rows {
		src := other.rows[i]
		for j := range row {
			row[j] -= src[j]
		}
	}

	return nil
}

// Scl multiplies every entry by s in place.
func (m *Matrix[K]) Scl(s K) {
	for _, row := range m.rows {
		for j := range row {
			row[j] *= s
		}
	}
}

// Sum returns a fresh matrix a + b. Inputs are not mutated.
func Sum[K Scalar](a, b *Matrix[K]) (*Matrix[K], error) {
	if err := ValidateSameShape(opSum, a, b); err != nil {
		return nil, err
	}
	out := a.Clone()
	_ = out.Add(b) // shapes already validated

	return out, nil
}

// Diff returns a fresh matrix a - b. Inputs are not mutated.
func Diff[K Scalar](a, b *Matrix[K]) (*Matrix[K], error) {
	if err := ValidateSameShape(opDiff, a, b); err != nil {
		return nil, err
	}
	out := a.Clone()
	_ = out.Sub(b)

	return out, nil
}

// Scaled returns a fresh matrix s * m.
func Scaled[K Scalar](m *Matrix[K], s K) *Matrix[K] {
	out := m.Clone()
	out.Scl(s)

	return out
}

// MulVec computes y = m * v. Requires Cols() == v.Size(); otherwise the
// result is an empty vector.
// Complexity: O(r*c).
func (m *Matrix[K]) MulVec(v *Vector[K]) *Vector[K] {
	rows, cols := m.Rows(), m.Cols()
	if cols != v.Size() {
		return NewVector[K](0)
	}
	out := NewVector[K](rows)
	var acc K
	for i, row := range m.rows {
		acc = 0
		for j := 0; j < cols; j++ {
			acc += row[j] * v.data[j]
		}
		out.data[i] = acc
	}

	return out
}

// MulMat computes the product m × other of shape (m.Rows() × other.Cols()).
// Requires m.Cols() == other.Rows(); otherwise the result is the 0×0 matrix.
// Complexity: O(r*n*c).
func (m *Matrix[K]) MulMat(other *Matrix[K]) *Matrix[K] {
	if m.Cols() != other.Rows() {
		return NewMatrix[K](0, 0)
	}
	rows, inner, cols := m.Rows(), m.Cols(), other.Cols()
	out := NewMatrix[K](rows, cols)
	var acc K
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			acc = 0
			for k := 0; k < inner; k++ {
				acc += m.rows[i][k] * other.rows[k][j]
			}
			out.rows[i][j] = acc
		}
	}

	return out
}

// Trace returns the sum of the main diagonal, or zero for a non-square matrix.
func (m *Matrix[K]) Trace() K {
	var acc K
	if !m.IsSquare() {
		return acc
	}
	for i := range m.rows {
		acc += m.rows[i][i]
	}

	return acc
}

// Transpose returns a new (Cols() × Rows()) matrix with out[j][i] = m[i][j].
func (m *Matrix[K]) Transpose() *Matrix[K] {
	rows, cols := m.Rows(), m.Cols()
	out := NewMatrix[K](cols, rows)
	for i, row := range m.rows {
		for j, x := range row {
			out.rows[j][i] = x
		}
	}

	return out
}

// Lerp interpolates elementwise towards other: m*(1-t) + other*t.
// Mismatched shapes yield the 0×0 matrix.
func (m *Matrix[K]) Lerp(other *Matrix[K], t float64) *Matrix[K] {
	out, err := MapMatrices(m, other, func(a, b K) K { return LerpScalar(a, b, t) })
	if err != nil {
		return NewMatrix[K](0, 0)
	}

	return out
}
