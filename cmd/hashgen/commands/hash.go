// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/hashgen/hashgen/cmd/hashgen/cli"
	"github.com/hashgen/hashgen/lib/canon"
	"github.com/hashgen/hashgen/lib/hashgen"
	"github.com/hashgen/hashgen/lib/secret"
)

type hashParams struct {
	globalParams
	Type       canon.Kind `json:"type"        flag:"type,t"      desc:"value kind: byte, char, short, int, long, float, double, string"`
	Algorithm  string     `json:"algorithm"   flag:"algorithm,a" desc:"digest algorithm (default from config, else SHA-256)"`
	Encoding   string     `json:"encoding"    flag:"encoding,e"  desc:"text encoding for string values (default from config, else UTF-8)"`
	Array      bool       `json:"array"       flag:"array"       desc:"hash all values as one array instead of one digest per value"`
	SecretFile string     `json:"secret_file" flag:"secret-file" desc:"hash the raw bytes of a file (- for stdin) as a byte array, held in locked memory"`
	Prompt     bool       `json:"prompt"      flag:"prompt"      desc:"read a secret from the terminal without echo and hash it as a byte array"`
}

func hashCommand(environment Environment) *cli.Command {
	var params hashParams

	return &cli.Command{
		Name:    "hash",
		Summary: "Print the hex digest of typed values",
		Description: `Encode each VALUE canonically as --type and print its hex digest, one
line per value. With --array, all values form a single array and one
digest is printed; no values is the empty array.

Char values are a single character or a code unit written 0x00e9 or
U+00E9. Byte values accept -128..255. Floats accept NaN and +/-Inf.
Negative values look like flags, so put them after "--":
"hashgen hash -t int -- -1".

--secret-file and --prompt hash raw bytes instead of literals. The
bytes never appear on the command line, are held outside the Go heap
where possible, and are wiped before exit.`,
		Usage:  "hashgen hash [flags] VALUE...",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{Description: "One digest per value", Command: "hashgen hash -t long -- 0 -1"},
			{Description: "A char array in UTF-16 code units", Command: "hashgen hash -t char --array h i"},
			{Description: "A string in Latin-1", Command: "hashgen hash -t string -e ISO-8859-1 héllo"},
			{Description: "A secret from stdin", Command: "hashgen hash --secret-file - < token"},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			return runHash(environment, &params, args, logger)
		},
	}
}

func runHash(environment Environment, params *hashParams, args []string, logger *slog.Logger) error {
	cfg, err := params.load(environment)
	if err != nil {
		return err
	}
	algorithm, err := resolveAlgorithm(params.Algorithm, cfg)
	if err != nil {
		return err
	}
	encoding := resolveEncoding(params.Encoding, cfg)
	if algorithm.Legacy() {
		logger.Warn("digest algorithm is not collision resistant", "algorithm", algorithm.String())
	}

	options := []hashgen.Option{hashgen.WithAlgorithm(algorithm), hashgen.WithLogger(logger)}
	if cfg.LockedMemory {
		options = append(options, hashgen.WithLockedMemory())
	}
	generator := hashgen.New(options...)
	defer generator.Close()

	stdout := environment.stdout()

	if params.SecretFile != "" || params.Prompt {
		if params.SecretFile != "" && params.Prompt {
			return errors.New("--secret-file and --prompt are mutually exclusive")
		}
		if len(args) > 0 {
			return fmt.Errorf("unexpected argument %q with --secret-file or --prompt", args[0])
		}
		digest, err := hashSecret(generator, params)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, digest)
		return err
	}

	kind := params.Type
	if kind == canon.Invalid {
		return errors.New("--type is required")
	}

	if params.Array {
		values, err := canon.ParseLiterals(kind, args)
		if err != nil {
			return err
		}
		digest, err := generator.HashValue(values, encoding)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, digest)
		return err
	}

	if len(args) == 0 {
		return errors.New("at least one VALUE is required (or --array for the empty array)")
	}
	for _, text := range args {
		value, err := canon.ParseLiteral(kind, text)
		if err != nil {
			return err
		}
		digest, err := generator.HashValue(value, encoding)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(stdout, digest); err != nil {
			return err
		}
	}
	return nil
}

// hashSecret digests the bytes named by --secret-file or typed at the
// --prompt, wiping them before it returns.
func hashSecret(generator *hashgen.Generator, params *hashParams) (string, error) {
	if params.SecretFile != "" {
		buffer, err := secret.ReadFromPath(params.SecretFile)
		if err != nil {
			return "", fmt.Errorf("reading secret: %w", err)
		}
		defer buffer.Close()
		return generator.HashBytes(buffer.Bytes())
	}

	descriptor := int(os.Stdin.Fd())
	if !term.IsTerminal(descriptor) {
		return "", errors.New("--prompt requires a terminal on stdin; use --secret-file - for piped input")
	}
	fmt.Fprint(os.Stderr, "Secret: ")
	data, err := term.ReadPassword(descriptor)
	fmt.Fprintln(os.Stderr)
	defer secret.Zero(data)
	if err != nil {
		return "", fmt.Errorf("reading secret: %w", err)
	}
	return generator.HashBytes(data)
}
