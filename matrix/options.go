// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the elimination kernels.
// This file defines:
//   - DEFAULTS for the numeric policy (single source of truth).
//   - Option setters accepted by RowEchelon, Inverse, Rank, Determinant and LU.
//   - gatherOptions, which resolves a variadic Option list into Options.
//
// Design goals:
//   - Zero-value behavior matches the exact contracts: a pivot is "zero" only
//     when it compares equal to 0.
//   - Setters panic only on nonsensical values (programmer error).
package matrix

import "math"

// DefaultEpsilon is the pivot tolerance used when no WithEpsilon option is given.
// Zero keeps the exact "first nonzero entry" pivot rule.
const DefaultEpsilon = 0.0

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	eps float64 // >= 0; |x| <= eps counts as a zero pivot
}

// Epsilon returns the resolved pivot tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// WithEpsilon sets the pivot tolerance: an entry x is treated as zero when |x| <= eps.
// Useful when inputs carry rounding noise that would otherwise be picked as a pivot.
// Panics if eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithExactPivot restores the default exact-zero pivot test.
func WithExactPivot() Option {
	return func(o *Options) { o.eps = DefaultEpsilon }
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{eps: DefaultEpsilon}
}

// NewOptions resolves opts over the defaults. Nil options are skipped.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies opts in order over defaultOptions.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// isZero reports whether v is a zero pivot under tolerance eps.
func isZero[K Scalar](v K, eps float64) bool {
	if eps == 0 {
		return v == 0
	}

	return Abs(v) <= eps
}
