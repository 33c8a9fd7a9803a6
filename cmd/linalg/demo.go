// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/internal/render"
	"github.com/katalvlaran/linalg/matrix"
)

type (
	vec = matrix.Vector[float64]
	mat = matrix.Matrix[float64]
)

func demoCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through every engine operation on fixed inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			runDemo(g.renderer(cmd))
			return nil
		},
	}
}

func vecOf(values ...float64) *vec { return matrix.VectorFrom(values) }

func matOf(rows ...[]float64) *mat { return matrix.MustMatrix(rows) }

// runDemo prints one section per operation group. Failing steps are printed
// in place, so the walk always completes.
func runDemo(r *render.Renderer) {
	r.Heading("Constructors")
	r.Vector("zeros", matrix.NewVector[float64](4))
	r.Vector("from values", vecOf(1, 2, 3, 4))
	r.Matrix("reshape", vecOf(1, 2, 3, 4).Reshape())
	r.Matrix("zeros", matrix.NewMatrix[float64](2, 2))
	r.Matrix("row matrix", matrix.RowMatrix([]float64{1, 2, 3, 4, 5, 6}))
	r.Matrix("from rows", matOf([]float64{1, 2, 3}, []float64{4, 5, 6}))
	id := matrix.Identity[float64](4, 1)
	r.Matrix("identity", id)
	doubled, err := matrix.MapMatrices(id, id, func(a, b float64) float64 { return a + b })
	if err != nil {
		r.Error("identity + identity", err)
	} else {
		r.Matrix("identity + identity", doubled)
	}

	r.Heading("Add, subtract, scale")
	u := vecOf(2, 3)
	if err := u.Add(vecOf(5, 7)); err != nil {
		r.Error("[2, 3] + [5, 7]", err)
	} else {
		r.Vector("[2, 3] + [5, 7]", u)
	}
	u = vecOf(2, 3)
	if err := u.Sub(vecOf(5, 7)); err != nil {
		r.Error("[2, 3] - [5, 7]", err)
	} else {
		r.Vector("[2, 3] - [5, 7]", u)
	}
	u = vecOf(2, 3)
	u.Scl(2)
	r.Vector("[2, 3] * 2", u)
	r.Error("[1, 2, 3] + [1, 2]", vecOf(1, 2, 3).Add(vecOf(1, 2)))

	r.Heading("Linear combination")
	lc, err := matrix.LinearCombination([]*vec{vecOf(1, 0, 0), vecOf(0, 1, 0), vecOf(0, 0, 1)}, []float64{10, -2, 0.5})
	if err != nil {
		r.Error("e1*10 + e2*-2 + e3*0.5", err)
	} else {
		r.Vector("e1*10 + e2*-2 + e3*0.5", lc)
	}

	r.Heading("Linear interpolation")
	r.Scalar("lerp(0, 1, 0.5)", matrix.LerpScalar(0.0, 1.0, 0.5))
	r.Scalar("lerp(21, 42, 0.3)", matrix.LerpScalar(21.0, 42.0, 0.3))
	r.Vector("lerp([2, 1], [4, 2], 0.3)", matrix.Lerp(vecOf(2, 1), vecOf(4, 2), 0.3))
	r.Matrix("lerp(A, B, 0.5)", matrix.Lerp(matOf([]float64{2, 1}, []float64{3, 4}), matOf([]float64{20, 10}, []float64{30, 40}), 0.5))

	r.Heading("Dot product and norms")
	r.Scalar("[-1, 6] . [3, 2]", vecOf(-1, 6).Dot(vecOf(3, 2)))
	w := vecOf(1, 2, 3)
	r.Scalar("norm1 [1, 2, 3]", w.Norm1())
	r.Scalar("norm [1, 2, 3]", w.Norm())
	r.Scalar("norm_inf [1, 2, 3]", w.NormInf())

	r.Heading("Cosine and cross product")
	r.Scalar("cos([1, 2, 3], [4, 5, 6])", matrix.AngleCos(vecOf(1, 2, 3), vecOf(4, 5, 6)))
	r.Scalar("cos([-1, 1], [1, -1])", matrix.AngleCos(vecOf(-1, 1), vecOf(1, -1)))
	r.Vector("[4, 2, -3] x [-2, -5, 16]", matrix.CrossProduct(vecOf(4, 2, -3), vecOf(-2, -5, 16)))

	r.Heading("Products")
	r.Vector("[[2, -2], [-2, 2]] * [4, 2]", matOf([]float64{2, -2}, []float64{-2, 2}).MulVec(vecOf(4, 2)))
	r.Matrix("[[3, -5], [6, 8]] * [[2, 1], [4, 2]]", matOf([]float64{3, -5}, []float64{6, 8}).MulMat(matOf([]float64{2, 1}, []float64{4, 2})))

	r.Heading("Trace and transpose")
	r.Scalar("trace", matOf([]float64{2, -5, 0}, []float64{4, 3, 7}, []float64{-2, 3, 4}).Trace())
	r.Matrix("transpose", matOf([]float64{1, 2, 3}, []float64{4, 5, 6}).Transpose())

	a := matOf([]float64{8, 5, -2}, []float64{4, 7, 20}, []float64{7, 6, 1})

	r.Heading("Row echelon")
	r.Matrix("rref", matOf([]float64{8, 5, -2, 4, 28}, []float64{4, 2.5, 20, 4, -4}, []float64{8, 5, 1, 4, 17}).RowEchelon())

	r.Heading("Determinant")
	r.Scalar("det 3x3", a.Determinant())
	r.Scalar("det 4x4", matOf(
		[]float64{8, 5, -2, 4},
		[]float64{4, 2.5, 20, 4},
		[]float64{8, 5, 1, 4},
		[]float64{28, -4, 17, 1},
	).Determinant())

	r.Heading("Inverse")
	if inv, err := a.Inverse(); err != nil {
		r.Error("inverse 3x3", err)
	} else {
		r.Matrix("inverse 3x3", inv)
	}
	if _, err := matOf([]float64{2, 1, 1}, []float64{0, 2, -2}, []float64{1, 1, 0}).Inverse(); err != nil {
		r.Error("inverse singular", err)
	}

	r.Heading("Rank")
	r.Int("rank", matOf([]float64{1, 2, 0, 0}, []float64{2, 4, 0, 0}, []float64{-1, 2, 1, 1}).Rank())

	r.Heading("Projection")
	r.Matrix("projection(90, 1, 1, 50)", matrix.Projection[float64](90, 1, 1, 50))
}
