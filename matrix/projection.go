// SPDX-License-Identifier: MIT

package matrix

import "math"

// Projection builds a 4×4 perspective-projection matrix.
//
// fov is the vertical field of view in degrees, ratio the aspect ratio
// (width/height), near and far the clip-plane distances. With
// s = 1/tan(fov/2 · π/180) the rows are
//
//	[s·xs, 0,    0,                   0]
//	[0,    s·ys, 0,                   0]
//	[0,    0,    -far/(far-near),    -1]
//	[0,    0,    -far·near/(far-near), 0]
//
// where xs = ratio when ratio < 1 (else 1) and ys = 1/ratio when ratio > 1 (else 1).
func Projection[K Scalar](fov, ratio, near, far float64) *Matrix[K] {
	s := 1 / math.Tan((fov/2)*(math.Pi/180))
	xScale, yScale := 1.0, 1.0
	if ratio < 1 {
		xScale = ratio
	}
	if ratio > 1 {
		yScale = 1 / ratio
	}
	depth := far - near

	return &Matrix[K]{rows: [][]K{
		{K(s * xScale), 0, 0, 0},
		{0, K(s * yScale), 0, 0},
		{0, 0, K(-far / depth), -1},
		{0, 0, K(-(far * near) / depth), 0},
	}}
}
