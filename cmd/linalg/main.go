// SPDX-License-Identifier: MIT

// Command linalg evaluates vector and matrix operations from the terminal.
//
//	linalg det --matrix '[[8, 5, -2], [4, 7, 20], [7, 6, 1]]'
//	linalg inverse --file input.yaml
//	cat input.yaml | linalg mul --file -
//	linalg demo
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	if err := Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
