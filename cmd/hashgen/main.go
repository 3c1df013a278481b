// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashgen/hashgen/cmd/hashgen/cli"
	"github.com/hashgen/hashgen/cmd/hashgen/commands"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own output (vectors verify) return
		// an error carrying the exit code. No extra "error:" line.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger := cli.NewCommandLogger(level)

	root := commands.Root(commands.Environment{Stdout: os.Stdout, Level: level})
	return root.Execute(ctx, os.Args[1:], logger)
}
