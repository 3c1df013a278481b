// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hashgen/hashgen/cmd/hashgen/cli"
	"github.com/hashgen/hashgen/lib/codec"
	"github.com/hashgen/hashgen/lib/digest"
	"github.com/hashgen/hashgen/lib/vectors"
)

func vectorsCommand(environment Environment) *cli.Command {
	return &cli.Command{
		Name:    "vectors",
		Summary: "Generate, verify and inspect known-answer vector files",
		Description: `Known-answer vector files pin the digest of every kind, scalar and
array, under every algorithm. They are CBOR (core deterministic
encoding), optionally compressed: a .zst or .lz4 extension selects zstd
or LZ4, otherwise vectors.compression from the config applies. Reading
detects the compression from the file contents.`,
		Subcommands: []*cli.Command{
			vectorsGenerateCommand(environment),
			vectorsVerifyCommand(environment),
			vectorsShowCommand(environment),
		},
	}
}

type vectorsGenerateParams struct {
	globalParams
	Out        string   `json:"out"        flag:"out,o"        desc:"output file (required)"`
	Algorithms []string `json:"algorithms" flag:"algorithms"   desc:"algorithms to cover (default all)"`
	Encoding   string   `json:"encoding"   flag:"encoding,e"   desc:"text encoding for string samples (default from config, else UTF-8)"`
}

func vectorsGenerateCommand(environment Environment) *cli.Command {
	var params vectorsGenerateParams

	return &cli.Command{
		Name:    "generate",
		Summary: "Write the built-in vector set",
		Usage:   "hashgen vectors generate --out FILE [flags]",
		Params:  func() any { return &params },
		Examples: []cli.Example{
			{Description: "All algorithms, zstd-compressed", Command: "hashgen vectors generate --out set.cbor.zst"},
			{Description: "Only the SHA-2 family", Command: "hashgen vectors generate --out sha2.cbor --algorithms SHA-256,SHA-384,SHA-512"},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			if params.Out == "" {
				return errors.New("--out is required")
			}
			cfg, err := params.load(environment)
			if err != nil {
				return err
			}
			fallback, err := cfg.Compression()
			if err != nil {
				return err
			}

			options := vectors.GenerateOptions{Encoding: resolveEncoding(params.Encoding, cfg)}
			for _, identifier := range params.Algorithms {
				algorithm, err := digest.Parse(identifier)
				if err != nil {
					return err
				}
				options.Algorithms = append(options.Algorithms, algorithm)
			}

			set, err := vectors.Generate(options)
			if err != nil {
				return err
			}
			if err := vectors.Write(params.Out, set, fallback); err != nil {
				return err
			}
			compression := vectors.CompressionForPath(params.Out, fallback)
			logger.Info("vector set written", "path", params.Out, "vectors", len(set.Vectors), "compression", compression.String())
			_, err = fmt.Fprintf(environment.stdout(), "wrote %d vectors to %s (%s)\n", len(set.Vectors), params.Out, compression)
			return err
		},
	}
}

type vectorsVerifyParams struct {
	globalParams
	Workers int `json:"workers" flag:"workers,w" desc:"verification goroutines (default from config, else one per CPU)"`
}

func vectorsVerifyCommand(environment Environment) *cli.Command {
	var params vectorsVerifyParams

	return &cli.Command{
		Name:    "verify",
		Summary: "Recompute every vector in a file",
		Description: `Recompute every vector through the stateless API and through a
per-worker Generator, and report each digest that differs. Exits 1 when
any vector fails.`,
		Usage:  "hashgen vectors verify [flags] FILE",
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one FILE, got %d arguments", len(args))
			}
			cfg, err := params.load(environment)
			if err != nil {
				return err
			}
			set, err := vectors.Read(args[0])
			if err != nil {
				return err
			}

			workers := params.Workers
			if workers == 0 {
				workers = cfg.Vectors.Workers
			}
			report, err := vectors.Verify(ctx, set, vectors.VerifyOptions{
				Workers:      workers,
				LockedMemory: cfg.LockedMemory,
				Logger:       logger,
			})
			if err != nil {
				return err
			}

			stdout := environment.stdout()
			for _, mismatch := range report.Mismatches {
				fmt.Fprintf(stdout, "FAIL %s\n", mismatch)
			}
			if !report.OK() {
				fmt.Fprintf(stdout, "%d mismatches in %d vectors\n", len(report.Mismatches), report.Checked)
				return &cli.ExitError{Code: 1}
			}
			_, err = fmt.Fprintf(stdout, "ok: %d vectors\n", report.Checked)
			return err
		},
	}
}

type vectorsShowParams struct {
	globalParams
	Diagnose bool `json:"diagnose" flag:"diagnose,d" desc:"print CBOR diagnostic notation instead of JSON"`
}

func vectorsShowCommand(environment Environment) *cli.Command {
	var params vectorsShowParams

	return &cli.Command{
		Name:    "show",
		Summary: "Print a vector file as JSON",
		Usage:   "hashgen vectors show [flags] FILE",
		Params:  func() any { return &params },
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one FILE, got %d arguments", len(args))
			}
			if _, err := params.load(environment); err != nil {
				return err
			}

			if params.Diagnose {
				raw, err := vectors.ReadRaw(args[0])
				if err != nil {
					return err
				}
				notation, err := codec.Diagnose(raw)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(environment.stdout(), notation)
				return err
			}

			set, err := vectors.Read(args[0])
			if err != nil {
				return err
			}
			return cli.WriteJSON(environment.stdout(), set)
		},
	}
}
