// SPDX-License-Identifier: MIT

package matrix

import "math"

// Scalar is the capability set every element type must provide.
//
// Zero value, copy, equality and the arithmetic operators (+, -, * and their
// in-place forms) come from the type set itself; Abs, Pow and ScaleBy supply
// the float-valued capabilities the norms, pivoting and interpolation need.
// Only floating-point types are admitted: several algorithms divide and scale
// by fractional factors, which integral types cannot represent.
type Scalar interface {
	~float32 | ~float64
}

// Abs returns |v| as float64.
func Abs[K Scalar](v K) float64 {
	return math.Abs(float64(v))
}

// Pow returns v raised to exp as float64.
func Pow[K Scalar](v K, exp float64) float64 {
	return math.Pow(float64(v), exp)
}

// ScaleBy multiplies v by the float factor t.
func ScaleBy[K Scalar](v K, t float64) K {
	return K(float64(v) * t)
}

// LerpScalar interpolates linearly between a and b: a*(1-t) + b*t.
// t=0 yields a exactly and t=1 yields b exactly.
func LerpScalar[K Scalar](a, b K, t float64) K {
	return ScaleBy(a, 1-t) + ScaleBy(b, t)
}
