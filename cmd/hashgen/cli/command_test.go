// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string
	root := &Command{
		Name: "hashgen",
		Subcommands: []*Command{
			{
				Name: "hash",
				Run: func(_ context.Context, _ []string, _ *slog.Logger) error {
					called = "hash"
					return nil
				},
			},
			{
				Name: "encode",
				Run: func(_ context.Context, _ []string, _ *slog.Logger) error {
					called = "encode"
					return nil
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"encode"}, nil); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "encode" {
		t.Errorf("dispatched to %q, want %q", called, "encode")
	}
}

func TestCommand_Execute_NestedSubcommandsAndParams(t *testing.T) {
	type verifyParams struct {
		Workers int `flag:"workers,w" desc:"worker count" default:"2"`
	}
	var params verifyParams
	var receivedArgs []string
	var receivedLogger *slog.Logger

	root := &Command{
		Name: "hashgen",
		Subcommands: []*Command{
			{
				Name: "vectors",
				Subcommands: []*Command{
					{
						Name:   "verify",
						Params: func() any { return &params },
						Run: func(_ context.Context, args []string, logger *slog.Logger) error {
							receivedArgs = args
							receivedLogger = logger
							return nil
						},
					},
				},
			},
		},
	}

	logger := slog.New(slog.DiscardHandler)
	if err := root.Execute(context.Background(), []string{"vectors", "verify", "-w", "8", "set.cbor"}, logger); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if params.Workers != 8 {
		t.Errorf("Workers = %d, want 8", params.Workers)
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "set.cbor" {
		t.Errorf("args = %v, want [set.cbor]", receivedArgs)
	}
	if receivedLogger != logger {
		t.Error("Run did not receive the logger passed to Execute")
	}
}

func TestCommand_Execute_ParamsDefaults(t *testing.T) {
	type hashParams struct {
		Type string `flag:"type" desc:"value kind" default:"int"`
	}
	var params hashParams
	command := &Command{
		Name:   "hash",
		Params: func() any { return &params },
		Run:    func(context.Context, []string, *slog.Logger) error { return nil },
	}
	if err := command.Execute(context.Background(), nil, nil); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if params.Type != "int" {
		t.Errorf("Type = %q, want default %q", params.Type, "int")
	}
}

func TestCommand_Execute_UnknownCommandSuggests(t *testing.T) {
	root := &Command{
		Name: "hashgen",
		Subcommands: []*Command{
			{Name: "vectors", Run: func(context.Context, []string, *slog.Logger) error { return nil }},
			{Name: "algorithms", Run: func(context.Context, []string, *slog.Logger) error { return nil }},
		},
	}

	err := root.Execute(context.Background(), []string{"vectros"}, nil)
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), `did you mean "vectors"`) {
		t.Errorf("error = %q, want a suggestion for vectors", err)
	}

	err = root.Execute(context.Background(), []string{"zzzzzzzzzz"}, nil)
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, want no suggestion for a distant name", err)
	}
}

func TestCommand_Execute_UnknownFlagSuggests(t *testing.T) {
	type params struct {
		Algorithm string `flag:"algorithm" desc:"digest algorithm"`
	}
	var p params
	command := &Command{
		Name:   "hash",
		Params: func() any { return &p },
		Run:    func(context.Context, []string, *slog.Logger) error { return nil },
	}

	err := command.Execute(context.Background(), []string{"--algoritm", "MD5"}, nil)
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if !strings.Contains(err.Error(), "did you mean --algorithm?") {
		t.Errorf("error = %q, want suggestion --algorithm", err)
	}
	if !strings.Contains(err.Error(), "Run 'hash --help' for usage.") {
		t.Errorf("error = %q, want help pointer", err)
	}
}

func TestCommand_Execute_NegativeValueNeedsSeparator(t *testing.T) {
	type params struct {
		Type string `flag:"type,t"`
	}
	var p params
	var received []string
	command := &Command{
		Name:   "hash",
		Params: func() any { return &p },
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			received = args
			return nil
		},
	}

	err := command.Execute(context.Background(), []string{"-t", "long", "0", "-1"}, nil)
	if err == nil || !strings.Contains(err.Error(), "put -- before negative values: -- -1") {
		t.Errorf("Execute() = %v, want a hint to use --", err)
	}

	if err := command.Execute(context.Background(), []string{"-t", "long", "--", "0", "-1"}, nil); err != nil {
		t.Fatalf("Execute() with -- error: %v", err)
	}
	if strings.Join(received, " ") != "0 -1" {
		t.Errorf("args = %v, want [0 -1]", received)
	}
}

func TestCommand_Execute_GroupRequiresSubcommand(t *testing.T) {
	root := &Command{
		Name: "vectors",
		Subcommands: []*Command{
			{Name: "verify", Run: func(context.Context, []string, *slog.Logger) error { return nil }},
		},
	}
	err := root.Execute(context.Background(), nil, nil)
	if err == nil || !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("Execute() = %v, want subcommand required", err)
	}
}

func TestCommand_Execute_HelpReturnsNil(t *testing.T) {
	ran := false
	command := &Command{
		Name: "hash",
		Run: func(context.Context, []string, *slog.Logger) error {
			ran = true
			return nil
		},
	}
	for _, arg := range []string{"-h", "--help", "help"} {
		if err := command.Execute(context.Background(), []string{arg}, nil); err != nil {
			t.Errorf("Execute(%q) = %v, want nil", arg, err)
		}
	}
	if ran {
		t.Error("Run called for a help request")
	}
}

func TestCommand_Execute_PropagatesRunError(t *testing.T) {
	sentinel := &ExitError{Code: 3}
	command := &Command{
		Name: "verify",
		Run:  func(context.Context, []string, *slog.Logger) error { return sentinel },
	}
	err := command.Execute(context.Background(), nil, nil)
	var exitError *ExitError
	if !errors.As(err, &exitError) || exitError.ExitCode() != 3 {
		t.Errorf("Execute() = %v, want ExitError code 3", err)
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	type params struct {
		Out string `flag:"out,o" desc:"output file"`
	}
	var p params
	root := &Command{
		Name:        "hashgen",
		Description: "Typed-value digests.",
		Subcommands: []*Command{
			{
				Name:    "generate",
				Summary: "Write a vector set",
				Params:  func() any { return &p },
				Examples: []Example{
					{Description: "Compressed output", Command: "hashgen vectors generate --out set.cbor.zst"},
				},
			},
		},
	}

	var buffer bytes.Buffer
	root.PrintHelp(&buffer)
	help := buffer.String()
	for _, want := range []string{"Typed-value digests.", "Usage:\n  hashgen <command> [flags]", "generate", "Write a vector set"} {
		if !strings.Contains(help, want) {
			t.Errorf("root help missing %q:\n%s", want, help)
		}
	}

	buffer.Reset()
	root.Subcommands[0].PrintHelp(&buffer)
	help = buffer.String()
	for _, want := range []string{"--out", "output file", "# Compressed output"} {
		if !strings.Contains(help, want) {
			t.Errorf("subcommand help missing %q:\n%s", want, help)
		}
	}
}
