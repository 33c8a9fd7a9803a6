// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/matrix"
)

func detCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "det",
		Short: "Determinant of a square matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := g.loadMatrix(cmd)
			if err != nil {
				return err
			}
			if err := matrix.ValidateSquare("det", m); err != nil {
				return err
			}
			g.renderer(cmd).Scalar("det", m.Determinant(g.options()...))
			return nil
		},
	}
}

func inverseCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "inverse",
		Short: "Inverse of a square matrix by Gauss-Jordan elimination",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := g.loadMatrix(cmd)
			if err != nil {
				return err
			}
			if err := matrix.ValidateSquare("inverse", m); err != nil {
				return err
			}
			inv, err := m.Inverse(g.options()...)
			if err != nil {
				log.Warn().Err(err).Stringer("shape", m.Shape()).Msg("inverse failed")
				return err
			}
			g.renderer(cmd).Matrix("inverse", inv)
			return nil
		},
	}
}

func rankCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "rank",
		Short: "Rank of a matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := g.loadMatrix(cmd)
			if err != nil {
				return err
			}
			g.renderer(cmd).Int("rank", m.Rank(g.options()...))
			return nil
		},
	}
}

func rrefCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "rref",
		Aliases: []string{"row-echelon"},
		Short:   "Reduced row-echelon form",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := g.loadMatrix(cmd)
			if err != nil {
				return err
			}
			g.renderer(cmd).Matrix("rref", m.RowEchelon(g.options()...))
			return nil
		},
	}
}

func transposeCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "transpose",
		Short: "Transpose of a matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := g.loadMatrix(cmd)
			if err != nil {
				return err
			}
			g.renderer(cmd).Matrix("transpose", m.Transpose())
			return nil
		},
	}
}

func traceCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "trace",
		Short: "Trace of a square matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := g.loadMatrix(cmd)
			if err != nil {
				return err
			}
			if err := matrix.ValidateSquare("trace", m); err != nil {
				return err
			}
			g.renderer(cmd).Scalar("trace", m.Trace())
			return nil
		},
	}
}

func luCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "lu",
		Short: "LU factorization with partial pivoting (P·A = L·U)",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := g.loadMatrix(cmd)
			if err != nil {
				return err
			}
			f, err := m.LU(g.options()...)
			if err != nil {
				return err
			}
			r := g.renderer(cmd)
			r.Matrix("L", f.L)
			r.Matrix("U", f.U)
			fmt.Fprintf(cmd.OutOrStdout(), "pivot: %v\n", f.Pivot)
			r.Scalar("det", f.Det())
			if f.Singular() {
				log.Info().Msg("matrix is singular")
			}
			return nil
		},
	}
}

// mulCmd multiplies the matrix by --other when given, else by --vector.
func mulCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "mul",
		Short: "Matrix product with --other, or matrix-vector product with --vector",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := g.load(cmd)
			if err != nil {
				return err
			}
			m, err := doc.MatrixOperand()
			if err != nil {
				return err
			}
			r := g.renderer(cmd)
			if doc.Other != nil {
				other, err := doc.OtherOperand()
				if err != nil {
					return err
				}
				if err := matrix.ValidateMulCompatible("mul", m, other); err != nil {
					return err
				}
				r.Matrix("product", m.MulMat(other))
				return nil
			}
			v, err := doc.VectorOperand()
			if err != nil {
				return err
			}
			if v.Size() != m.Cols() {
				return fmt.Errorf("mul: %w: matrix has %d columns, vector has %d elements",
					matrix.ErrShapeMismatch, m.Cols(), v.Size())
			}
			r.Vector("product", m.MulVec(v))
			return nil
		},
	}
}

func normCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "norm",
		Short: "1-, 2- and infinity-norms of a vector",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := g.load(cmd)
			if err != nil {
				return err
			}
			v, err := doc.VectorOperand()
			if err != nil {
				return err
			}
			r := g.renderer(cmd)
			r.Scalar("norm1", v.Norm1())
			r.Scalar("norm", v.Norm())
			r.Scalar("norm_inf", v.NormInf())
			return nil
		},
	}
}

func projectionCmd(g *globalFlags) *cobra.Command {
	var fov, ratio, near, far float64
	cmd := &cobra.Command{
		Use:   "projection",
		Short: "4x4 perspective-projection matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			if near == far {
				return fmt.Errorf("projection: near and far planes must differ")
			}
			g.renderer(cmd).Matrix("projection", matrix.Projection[float64](fov, ratio, near, far))
			return nil
		},
	}
	cmd.Flags().Float64Var(&fov, "fov", 90, "vertical field of view in degrees")
	cmd.Flags().Float64Var(&ratio, "ratio", 1, "aspect ratio (width/height)")
	cmd.Flags().Float64Var(&near, "near", 1, "near clip plane")
	cmd.Flags().Float64Var(&far, "far", 50, "far clip plane")
	return cmd
}
