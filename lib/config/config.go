// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/hashgen/hashgen/lib/digest"
	"github.com/hashgen/hashgen/lib/textenc"
	"github.com/hashgen/hashgen/lib/vectors"
)

// EnvironmentVariable names the config file when --config is absent.
const EnvironmentVariable = "HASHGEN_CONFIG"

// Config is the hashgen command configuration.
type Config struct {
	// Algorithm is the digest algorithm identifier used when a command
	// does not name one. Default: SHA-256
	Algorithm string `yaml:"algorithm" json:"algorithm"`

	// Encoding is the text encoding for string values. Default: UTF-8
	Encoding string `yaml:"encoding" json:"encoding"`

	// LogLevel is one of debug, info, warn, error. Default: warn
	LogLevel string `yaml:"log_level" json:"log_level"`

	// LockedMemory backs scratch buffers with mlock'd memory.
	LockedMemory bool `yaml:"locked_memory" json:"locked_memory"`

	// Vectors configures the vector generate/verify commands.
	Vectors VectorsConfig `yaml:"vectors" json:"vectors"`
}

// VectorsConfig configures the vector tooling.
type VectorsConfig struct {
	// Workers is the verification goroutine count; 0 means one per CPU.
	Workers int `yaml:"workers" json:"workers"`

	// Compression applies when the output path has no .zst or .lz4
	// extension: none, zstd or lz4. Default: none
	Compression string `yaml:"compression" json:"compression"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Algorithm: "SHA-256",
		Encoding:  "UTF-8",
		LogLevel:  "warn",
		Vectors: VectorsConfig{
			Compression: "none",
		},
	}
}

// Resolve loads the file at path if non-empty, else the file named by
// HASHGEN_CONFIG if set, else returns Default.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return LoadFile(path)
	}
	if os.Getenv(EnvironmentVariable) != "" {
		return Load()
	}
	return Default(), nil
}

// Load loads configuration from the file named by HASHGEN_CONFIG. It
// fails if the variable is unset.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your hashgen config file, or use --config", EnvironmentVariable)
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from path over the defaults. Fields the
// file omits keep their default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".json", ".jsonc":
		decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config file %s: unknown extension (want .yaml, .yml, .json or .jsonc)", path)
	}
	return cfg, nil
}

// DigestAlgorithm resolves the Algorithm field.
func (c *Config) DigestAlgorithm() (digest.Algorithm, error) {
	return digest.Parse(c.Algorithm)
}

// Level resolves the LogLevel field.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// Compression resolves the Vectors.Compression field.
func (c *Config) Compression() (vectors.Compression, error) {
	return vectors.ParseCompression(c.Vectors.Compression)
}

// Validate checks the configuration for errors and reports all of
// them.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.DigestAlgorithm(); err != nil {
		errs = append(errs, fmt.Errorf("algorithm: %w", err))
	}
	if _, err := textenc.Lookup(c.Encoding); err != nil {
		errs = append(errs, fmt.Errorf("encoding: %w", err))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if c.Vectors.Workers < 0 {
		errs = append(errs, fmt.Errorf("vectors.workers must be >= 0, got %d", c.Vectors.Workers))
	}
	if _, err := c.Compression(); err != nil {
		errs = append(errs, fmt.Errorf("vectors.compression: %w", err))
	}

	return errors.Join(errs...)
}
