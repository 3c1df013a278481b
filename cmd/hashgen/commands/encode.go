// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hashgen/hashgen/cmd/hashgen/cli"
	"github.com/hashgen/hashgen/lib/canon"
	"github.com/hashgen/hashgen/lib/hashgen"
	"github.com/hashgen/hashgen/lib/secret"
)

type encodeParams struct {
	globalParams
	Type     canon.Kind `json:"type"     flag:"type,t"     desc:"value kind: byte, char, short, int, long, float, double, string"`
	Encoding string     `json:"encoding" flag:"encoding,e" desc:"text encoding for string values (default from config, else UTF-8)"`
	Array    bool       `json:"array"    flag:"array"      desc:"encode all values as one array"`
	Out      string     `json:"out"      flag:"out,o"      desc:"write raw bytes to this file instead of hex to stdout"`
}

func encodeCommand(environment Environment) *cli.Command {
	var params encodeParams

	return &cli.Command{
		Name:    "encode",
		Summary: "Print or write the canonical encoding of a value",
		Description: `Encode a VALUE (or, with --array, all values) as --type and print the
canonical bytes as hex, or write them raw to --out. These are exactly
the bytes "hashgen hash" digests, so the output can be checked with any
external digest tool.`,
		Usage:  "hashgen encode [flags] VALUE...",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{Description: "Big-endian two's complement", Command: "hashgen encode -t int -- -2"},
			{Description: "Cross-check with sha256sum", Command: "hashgen encode -t double --out pi.bin 3.141592653589793 && sha256sum pi.bin"},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			return runEncode(environment, &params, args, logger)
		},
	}
}

func runEncode(environment Environment, params *encodeParams, args []string, logger *slog.Logger) error {
	cfg, err := params.load(environment)
	if err != nil {
		return err
	}
	kind := params.Type
	if kind == canon.Invalid {
		return errors.New("--type is required")
	}

	var value any
	if params.Array {
		value, err = canon.ParseLiterals(kind, args)
	} else {
		if len(args) != 1 {
			return fmt.Errorf("expected exactly one VALUE without --array, got %d", len(args))
		}
		value, err = canon.ParseLiteral(kind, args[0])
	}
	if err != nil {
		return err
	}

	encoded, err := hashgen.Encode(value, resolveEncoding(params.Encoding, cfg))
	defer secret.Zero(encoded)
	if err != nil {
		return err
	}

	if params.Out != "" {
		if err := os.WriteFile(params.Out, encoded, 0o600); err != nil {
			return fmt.Errorf("writing encoding: %w", err)
		}
		logger.Info("canonical encoding written", "path", params.Out, "bytes", len(encoded))
		return nil
	}
	_, err = fmt.Fprintln(environment.stdout(), hex.EncodeToString(encoded))
	return err
}
