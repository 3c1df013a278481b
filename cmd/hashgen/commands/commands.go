// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the hashgen command tree.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hashgen/hashgen/cmd/hashgen/cli"
	"github.com/hashgen/hashgen/lib/config"
	"github.com/hashgen/hashgen/lib/digest"
	"github.com/hashgen/hashgen/lib/version"
)

// Environment is the process state the command tree reads and writes.
type Environment struct {
	// Stdout receives command output. Defaults to os.Stdout.
	Stdout io.Writer

	// Level is set to the configured log level once a command has
	// loaded its config. The binary's logger must be built over it.
	Level *slog.LevelVar
}

func (e Environment) stdout() io.Writer {
	if e.Stdout == nil {
		return os.Stdout
	}
	return e.Stdout
}

// Root builds and returns the complete hashgen command tree.
func Root(environment Environment) *cli.Command {
	return &cli.Command{
		Name: "hashgen",
		Description: `hashgen: hex digests of typed values.

Values are encoded canonically (big-endian two's complement integers,
raw IEEE-754 floats, UTF-16 code units for chars, strings in a named
charset, arrays as the concatenation of their elements) and digested
with the selected algorithm.`,
		Subcommands: []*cli.Command{
			hashCommand(environment),
			encodeCommand(environment),
			algorithmsCommand(environment),
			vectorsCommand(environment),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, _ []string, _ *slog.Logger) error {
					_, err := fmt.Fprintf(environment.stdout(), "hashgen %s\n", version.Full())
					return err
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "SHA-256 of the 32-bit integer 42",
				Command:     "hashgen hash --type int 42",
			},
			{
				Description: "MD5 of a short array",
				Command:     "hashgen hash --type short --array --algorithm MD5 -- -32768 0 647 32767",
			},
			{
				Description: "Digest a key file without leaving copies on the heap",
				Command:     "hashgen hash --secret-file key.bin",
			},
			{
				Description: "Write and check a compressed vector set",
				Command:     "hashgen vectors generate --out set.cbor.zst && hashgen vectors verify set.cbor.zst",
			},
		},
	}
}

// globalParams are the flags every leaf command accepts.
type globalParams struct {
	ConfigPath string `json:"config"    flag:"config"    desc:"config file (.yaml, .yml, .json, .jsonc); default $HASHGEN_CONFIG"`
	LogLevel   string `json:"log_level" flag:"log-level" desc:"log level override: debug, info, warn, error"`
}

// load resolves and validates the config, applies --log-level over it,
// and sets the environment's log level.
func (p *globalParams) load(environment Environment) (*config.Config, error) {
	cfg, err := config.Resolve(p.ConfigPath)
	if err != nil {
		return nil, err
	}
	if p.LogLevel != "" {
		cfg.LogLevel = p.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration:\n%w", err)
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	if environment.Level != nil {
		environment.Level.Set(level)
	}
	return cfg, nil
}

// resolveAlgorithm picks the flag value if set, else the configured
// algorithm.
func resolveAlgorithm(flagValue string, cfg *config.Config) (digest.Algorithm, error) {
	if flagValue != "" {
		return digest.Parse(flagValue)
	}
	return cfg.DigestAlgorithm()
}

// resolveEncoding picks the flag value if set, else the configured
// encoding.
func resolveEncoding(flagValue string, cfg *config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.Encoding
}
