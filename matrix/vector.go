// SPDX-License-Identifier: MIT
// Package matrix: Vector is the 1-D container of the engine.
// A Vector owns its backing slice exclusively: constructors copy their input
// and accessors hand out copies, so no two Vectors ever alias.

package matrix

import (
	"fmt"
	"iter"
	"strings"
)

// Operation name constants for vector error tagging.
const (
	opVecAdd  = "Vector.Add"
	opVecSub  = "Vector.Sub"
	opVecMap  = "MapVectors"
	opVecZip  = "Vector.Zip"
	opVecFrom = "NewVector"
)

// Vector is a fixed-length ordered sequence of K.
// The length is set at construction and never changes afterwards.
type Vector[K Scalar] struct {
	data []K // backing storage, len == Size()
}

// NewVector returns a zero-filled vector of the given size.
// Panics with ErrBadShape if size is negative.
func NewVector[K Scalar](size int) *Vector[K] {
	if size < 0 {
		panic(matrixErrorf(opVecFrom, ErrBadShape))
	}

	return &Vector[K]{data: make([]K, size)}
}

// VectorFrom returns a vector holding a copy of values.
func VectorFrom[K Scalar](values []K) *Vector[K] {
	data := make([]K, len(values))
	copy(data, values)

	return &Vector[K]{data: data}
}

// Size returns the number of elements.
func (v *Vector[K]) Size() int { return len(v.data) }

// Shape returns (1, Size()) treating the vector as a single row, or (0, 0) when empty.
func (v *Vector[K]) Shape() Shape {
	if len(v.data) == 0 {
		return Shape{0, 0}
	}

	return Shape{1, len(v.data)}
}

// Reshape copies the vector into a single-row matrix of shape (1, Size()).
func (v *Vector[K]) Reshape() *Matrix[K] {
	return RowMatrix(v.data)
}

// At returns the i-th element. Panics with ErrIndexOutOfRange outside [0, Size()).
func (v *Vector[K]) At(i int) K {
	if i < 0 || i >= len(v.data) {
		indexPanic("Vector.At", i)
	}

	return v.data[i]
}

// Set assigns x to the i-th element. Panics with ErrIndexOutOfRange outside [0, Size()).
func (v *Vector[K]) Set(i int, x K) {
	if i < 0 || i >= len(v.data) {
		indexPanic("Vector.Set", i)
	}
	v.data[i] = x
}

// Values returns a copy of the elements.
func (v *Vector[K]) Values() []K {
	out := make([]K, len(v.data))
	copy(out, v.data)

	return out
}

// All iterates over (index, value) pairs in order.
func (v *Vector[K]) All() iter.Seq2[int, K] {
	return func(yield func(int, K) bool) {
		for i, x := range v.data {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Zip iterates over paired elements of v and other.
// Fails with a *ShapeError when the sizes differ.
func (v *Vector[K]) Zip(other *Vector[K]) (iter.Seq2[K, K], error) {
	if err := ValidateSameSize(opVecZip, v, other); err != nil {
		return nil, err
	}

	return func(yield func(K, K) bool) {
		for i := range v.data {
			if !yield(v.data[i], other.data[i]) {
				return
			}
		}
	}, nil
}

// Clone returns an independent copy.
func (v *Vector[K]) Clone() *Vector[K] { return VectorFrom(v.data) }

// Equal reports whether both vectors have the same size and identical elements.
func (v *Vector[K]) Equal(other *Vector[K]) bool {
	if len(v.data) != len(other.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// String renders the vector as "[a, b, c]".
func (v *Vector[K]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", x)
	}
	sb.WriteByte(']')

	return sb.String()
}

// Fill overwrites every element with value.
func (v *Vector[K]) Fill(value K) {
	for i := range v.data {
		v.data[i] = value
	}
}

// Map returns a new vector with fn applied to every element.
func (v *Vector[K]) Map(fn func(K) K) *Vector[K] {
	out := NewVector[K](len(v.data))
	for i, x := range v.data {
		out.data[i] = fn(x)
	}

	return out
}

// MapVectors returns a new vector whose i-th element is fn(a[i], b[i]).
// Fails with a *ShapeError when the sizes differ.
func MapVectors[K Scalar](a, b *Vector[K], fn func(x, y K) K) (*Vector[K], error) {
	if err := ValidateSameSize(opVecMap, a, b); err != nil {
		return nil, err
	}
	out := NewVector[K](len(a.data))
	for i := range a.data {
		out.data[i] = fn(a.data[i], b.data[i])
	}

	return out, nil
}

// Add adds other into v elementwise. On size mismatch v is left unchanged
// and a *ShapeError is returned.
func (v *Vector[K]) Add(other *Vector[K]) error {
	if err := ValidateSameSize(opVecAdd, v, other); err != nil {
		return err
	}
	for i := range v.data {
		v.data[i] += other.data[i]
	}

	return nil
}

// Sub subtracts other from v elementwise. On size mismatch v is left unchanged
// and a *ShapeError is returned.
func (v *Vector[K]) Sub(other *Vector[K]) error {
	if err := ValidateSameSize(opVecSub, v, other); err != nil {
		return err
	}
	for i := range v.data {
		v.data[i] -= other.data[i]
	}

	return nil
}

// Scl multiplies every element by s in place.
func (v *Vector[K]) Scl(s K) {
	for i := range v.data {
		v.data[i] *= s
	}
}

// Dot returns Σ v[i]*other[i]. Mismatched sizes yield zero rather than an error.
func (v *Vector[K]) Dot(other *Vector[K]) K {
	var acc K
	if len(v.data) != len(other.data) {
		return acc
	}
	for i := range v.data {
		acc += v.data[i] * other.data[i]
	}

	return acc
}

// Norm1 returns the Manhattan norm Σ|v[i]|.
func (v *Vector[K]) Norm1() float64 {
	acc := 0.0
	for _, x := range v.data {
		acc += Abs(x)
	}

	return acc
}

// Norm returns the Euclidean norm (Σ v[i]²)^0.5.
func (v *Vector[K]) Norm() float64 {
	acc := 0.0
	for _, x := range v.data {
		acc += Pow(x, 2)
	}

	return Pow(acc, 0.5)
}

// NormInf returns max|v[i]|, or 0 for an empty vector.
func (v *Vector[K]) NormInf() float64 {
	best := 0.0
	for _, x := range v.data {
		if a := Abs(x); a > best {
			best = a
		}
	}

	return best
}

// Lerp interpolates elementwise towards other: v*(1-t) + other*t.
// Mismatched sizes yield an empty vector.
func (v *Vector[K]) Lerp(other *Vector[K], t float64) *Vector[K] {
	out, err := MapVectors(v, other, func(a, b K) K { return LerpScalar(a, b, t) })
	if err != nil {
		return NewVector[K](0)
	}

	return out
}
