// SPDX-License-Identifier: MIT
// Package matrix: free functions over vectors (linear combination, cosine,
// cross product) and the generic interpolation entry point.

package matrix

const opLinearCombination = "LinearCombination"

// LinearCombination returns Σ coeffs[i]·vectors[i], computed column by column.
//
// Errors (checked in this order, before any arithmetic):
//   - ErrEmptyInput when vectors or coeffs is empty.
//   - *ShapeError when the vectors differ in size.
//   - *ShapeError when len(coeffs) != len(vectors).
func LinearCombination[K Scalar](vectors []*Vector[K], coeffs []K) (*Vector[K], error) {
	if len(vectors) == 0 || len(coeffs) == 0 {
		return nil, matrixErrorf(opLinearCombination, ErrEmptyInput)
	}
	size := vectors[0].Size()
	for _, v := range vectors[1:] {
		if err := ValidateSameSize(opLinearCombination, vectors[0], v); err != nil {
			return nil, err
		}
	}
	if len(coeffs) != len(vectors) {
		return nil, shapeErrorf(opLinearCombination, Shape{1, len(vectors)}, Shape{1, len(coeffs)})
	}

	out := NewVector[K](size)
	var acc K
	for col := 0; col < size; col++ {
		acc = 0
		for i, v := range vectors {
			acc += coeffs[i] * v.data[col]
		}
		out.data[col] = acc
	}

	return out, nil
}

// AngleCos returns the cosine similarity dot(u,v) / (‖u‖·‖v‖).
// Empty inputs, mismatched sizes and zero-norm vectors yield 0, never NaN.
func AngleCos[K Scalar](u, v *Vector[K]) float64 {
	if u.Size() == 0 || v.Size() == 0 || u.Size() != v.Size() {
		return 0
	}
	denom := u.Norm() * v.Norm()
	if denom == 0 {
		return 0
	}

	return float64(u.Dot(v)) / denom
}

// CrossProduct returns u × v for 3-D vectors, or an empty vector when either
// operand does not have exactly 3 elements.
func CrossProduct[K Scalar](u, v *Vector[K]) *Vector[K] {
	if u.Size() != 3 || v.Size() != 3 {
		return NewVector[K](0)
	}
	a, b := u.data, v.data

	return &Vector[K]{data: []K{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}}
}

// Interpolator is implemented by containers that interpolate towards a peer of
// the same type. *Vector[K] and *Matrix[K] satisfy it.
type Interpolator[T any] interface {
	Lerp(other T, t float64) T
}

// Lerp interpolates linearly between a and b: a*(1-t) + b*t.
// Scalars use LerpScalar; containers interpolate elementwise and return an
// empty result on shape mismatch.
func Lerp[T Interpolator[T]](a, b T, t float64) T {
	return a.Lerp(b, t)
}
