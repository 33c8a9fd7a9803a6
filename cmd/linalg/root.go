// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/linalg/internal/document"
	"github.com/katalvlaran/linalg/internal/render"
	"github.com/katalvlaran/linalg/matrix"
)

// globalFlags holds the persistent flags shared by every subcommand.
type globalFlags struct {
	file     string
	matrix   string
	other    string
	vector   string
	eps      float64
	logLevel string
	jsonLogs bool
	noColor  bool
}

var errNegativeEps = errors.New("--eps must be non-negative")

// Execute builds the command tree and runs it under ctx.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "linalg",
		Short:         "Dense vector and matrix operations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := g.setupLogging(cmd); err != nil {
				return err
			}
			if g.eps < 0 {
				return errNegativeEps
			}
			log.Debug().Str("cmd", cmd.Name()).Float64("eps", g.eps).Msg("linalg starting")
			return nil
		},
	}

	g.bind(root.PersistentFlags())

	root.AddCommand(
		detCmd(g),
		inverseCmd(g),
		rankCmd(g),
		rrefCmd(g),
		transposeCmd(g),
		traceCmd(g),
		luCmd(g),
		mulCmd(g),
		normCmd(g),
		projectionCmd(g),
		demoCmd(g),
	)

	return root
}

// bind registers the persistent flags on fs.
func (g *globalFlags) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&g.file, "file", "f", "", "operand document (YAML or JSON); - reads stdin")
	fs.StringVar(&g.matrix, "matrix", "", "matrix literal, e.g. '[[1, 2], [3, 4]]'")
	fs.StringVar(&g.other, "other", "", "second matrix literal")
	fs.StringVar(&g.vector, "vector", "", "vector literal, e.g. '[1, 2, 3]'")
	fs.Float64Var(&g.eps, "eps", matrix.DefaultEpsilon, "pivot tolerance; 0 means exact")
	fs.StringVar(&g.logLevel, "log-level", "warn", "log level: debug|info|warn|error")
	fs.BoolVar(&g.jsonLogs, "json-logs", false, "emit JSON logs on stderr")
	fs.BoolVar(&g.noColor, "no-color", false, "disable styled output")
}

func (g *globalFlags) setupLogging(cmd *cobra.Command) error {
	level, err := zerolog.ParseLevel(g.logLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	zerolog.SetGlobalLevel(level)
	if g.jsonLogs {
		log.Logger = zerolog.New(cmd.ErrOrStderr()).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: g.noColor})
	}

	return nil
}

// load merges the --file document with the inline literal flags; literals win.
func (g *globalFlags) load(cmd *cobra.Command) (*document.Document, error) {
	doc := &document.Document{}
	if g.file != "" {
		var err error
		if doc, err = document.Load(g.file, cmd.InOrStdin()); err != nil {
			return nil, err
		}
		log.Debug().Str("file", g.file).Msg("document loaded")
	}

	var err error
	if g.matrix != "" {
		if doc.Matrix, err = document.ParseMatrix(g.matrix); err != nil {
			return nil, err
		}
	}
	if g.other != "" {
		if doc.Other, err = document.ParseMatrix(g.other); err != nil {
			return nil, err
		}
	}
	if g.vector != "" {
		if doc.Vector, err = document.ParseVector(g.vector); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// loadMatrix loads the document and returns its "matrix" operand.
func (g *globalFlags) loadMatrix(cmd *cobra.Command) (*matrix.Matrix[float64], error) {
	doc, err := g.load(cmd)
	if err != nil {
		return nil, err
	}
	m, err := doc.MatrixOperand()
	if err != nil {
		return nil, err
	}
	log.Debug().Stringer("shape", m.Shape()).Msg("matrix operand")

	return m, nil
}

func (g *globalFlags) options() []matrix.Option {
	if g.eps == 0 {
		return nil
	}

	return []matrix.Option{matrix.WithEpsilon(g.eps)}
}

func (g *globalFlags) renderer(cmd *cobra.Command) *render.Renderer {
	return render.New(cmd.OutOrStdout(), !g.noColor && os.Getenv("NO_COLOR") == "")
}
