// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package vectors

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashgen/hashgen/lib/codec"
)

// Marshal encodes a set as deterministic CBOR and compresses it.
func Marshal(set *Set, compression Compression) ([]byte, error) {
	encoded, err := codec.Marshal(set)
	if err != nil {
		return nil, fmt.Errorf("encoding vector set: %w", err)
	}
	return compress(encoded, compression)
}

// Unmarshal decodes a set produced by Marshal with any compression,
// then checks its version and every vector.
func Unmarshal(data []byte) (*Set, error) {
	decoded, err := decompress(data)
	if err != nil {
		return nil, err
	}
	var set Set
	if err := codec.Unmarshal(decoded, &set); err != nil {
		return nil, fmt.Errorf("decoding vector set: %w", err)
	}
	if set.Version != FormatVersion {
		return nil, fmt.Errorf("vector set version %d, want %d", set.Version, FormatVersion)
	}
	for index := range set.Vectors {
		if err := set.Vectors[index].Validate(); err != nil {
			return nil, err
		}
	}
	return &set, nil
}

// Write stores a set at path. The compression is taken from the
// extension (".zst", ".lz4"), or fallback otherwise. The file is
// written to a temporary name and renamed into place.
func Write(path string, set *Set, fallback Compression) error {
	data, err := Marshal(set, CompressionForPath(path, fallback))
	if err != nil {
		return err
	}

	temporary, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("creating temporary file for %s: %w", path, err)
	}
	if _, err := temporary.Write(data); err != nil {
		temporary.Close()
		os.Remove(temporary.Name())
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := temporary.Close(); err != nil {
		os.Remove(temporary.Name())
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Rename(temporary.Name(), path); err != nil {
		os.Remove(temporary.Name())
		return fmt.Errorf("renaming into %s: %w", path, err)
	}
	return nil
}

// Read loads a set written by Write.
func Read(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vector file: %w", err)
	}
	set, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// ReadRaw returns the decompressed CBOR content of a vector file
// without decoding it.
func ReadRaw(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vector file: %w", err)
	}
	decoded, err := decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}
