// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"strings"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/hashgen/hashgen/lib/md2"
)

var (
	// ErrInvalidArgument is returned when a required argument is
	// missing, such as an Unset algorithm passed to a stateless call.
	ErrInvalidArgument = errors.New("digest: invalid argument")

	// ErrUnsupportedAlgorithm is returned for identifiers and
	// Algorithm values that name no known digest.
	ErrUnsupportedAlgorithm = errors.New("digest: unsupported algorithm")

	// ErrNotConfigured is returned by a Context (and the stateful
	// hashgen.Generator) when no algorithm has been set.
	ErrNotConfigured = errors.New("digest: no algorithm configured")
)

// Algorithm selects a digest function. The zero value, Unset, selects
// none.
type Algorithm uint8

const (
	Unset Algorithm = iota
	MD2
	MD5
	SHA1
	SHA256
	SHA384
	SHA512
	SHA3_256
	SHA3_512
	BLAKE2b256
	BLAKE2b512
	BLAKE3
)

// Algorithms lists every supported Algorithm in declaration order.
var Algorithms = []Algorithm{
	MD2, MD5, SHA1, SHA256, SHA384, SHA512,
	SHA3_256, SHA3_512, BLAKE2b256, BLAKE2b512, BLAKE3,
}

type algorithmInfo struct {
	identifier string
	size       int
	legacy     bool
	create     func() hash.Hash
}

var registry = [...]algorithmInfo{
	MD2:        {identifier: "MD2", size: md2.Size, legacy: true, create: md2.New},
	MD5:        {identifier: "MD5", size: md5.Size, legacy: true, create: md5.New},
	SHA1:       {identifier: "SHA-1", size: sha1.Size, legacy: true, create: sha1.New},
	SHA256:     {identifier: "SHA-256", size: sha256.Size, create: sha256.New},
	SHA384:     {identifier: "SHA-384", size: sha512.Size384, create: sha512.New384},
	SHA512:     {identifier: "SHA-512", size: sha512.Size, create: sha512.New},
	SHA3_256:   {identifier: "SHA3-256", size: 32, create: newSHA3256},
	SHA3_512:   {identifier: "SHA3-512", size: 64, create: newSHA3512},
	BLAKE2b256: {identifier: "BLAKE2b-256", size: blake2b.Size256, create: newBLAKE2b256},
	BLAKE2b512: {identifier: "BLAKE2b-512", size: blake2b.Size, create: newBLAKE2b512},
	BLAKE3:     {identifier: "BLAKE3", size: 32, create: newBLAKE3},
}

func newSHA3256() hash.Hash {
	return sha3.New256()
}

func newSHA3512() hash.Hash {
	return sha3.New512()
}

// blake2b only fails for keys longer than 64 bytes.
func newBLAKE2b256() hash.Hash {
	h, _ := blake2b.New256(nil)
	return h
}

func newBLAKE2b512() hash.Hash {
	h, _ := blake2b.New512(nil)
	return h
}

func newBLAKE3() hash.Hash {
	return blake3.New()
}

func (a Algorithm) info() (algorithmInfo, bool) {
	if a == Unset || int(a) >= len(registry) {
		return algorithmInfo{}, false
	}
	return registry[a], true
}

// Valid reports whether a names a supported algorithm.
func (a Algorithm) Valid() bool {
	_, ok := a.info()
	return ok
}

// String returns the algorithm identifier ("SHA-256"), "unset" for the
// zero value, or "Algorithm(n)" for unknown values.
func (a Algorithm) String() string {
	if a == Unset {
		return "unset"
	}
	if info, ok := a.info(); ok {
		return info.identifier
	}
	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// Size returns the digest length in bytes, or 0 for Unset and unknown
// values.
func (a Algorithm) Size() int {
	info, _ := a.info()
	return info.size
}

// Legacy reports whether the algorithm is kept only for compatibility
// (MD2, MD5, SHA-1).
func (a Algorithm) Legacy() bool {
	info, _ := a.info()
	return info.legacy
}

// New returns a fresh hash.Hash for a. Unset yields ErrInvalidArgument;
// values outside the registry yield ErrUnsupportedAlgorithm.
func (a Algorithm) New() (hash.Hash, error) {
	if a == Unset {
		return nil, fmt.Errorf("%w: no algorithm given", ErrInvalidArgument)
	}
	info, ok := a.info()
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, a)
	}
	return info.create(), nil
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: cannot marshal %v", ErrUnsupportedAlgorithm, a)
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Parse resolves an algorithm identifier. Matching ignores case and the
// separators '-', '_' and ' ', so "sha256", "SHA_256" and "SHA-256" are
// the same algorithm.
func Parse(identifier string) (Algorithm, error) {
	key := normalize(identifier)
	if key == "" {
		return Unset, fmt.Errorf("%w: empty algorithm identifier", ErrUnsupportedAlgorithm)
	}
	for _, algorithm := range Algorithms {
		if normalize(registry[algorithm].identifier) == key {
			return algorithm, nil
		}
	}
	return Unset, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, identifier)
}

func normalize(identifier string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToUpper(strings.TrimSpace(identifier)))
}

// New creates a hash for the named algorithm.
func New(identifier string) (hash.Hash, error) {
	algorithm, err := Parse(identifier)
	if err != nil {
		return nil, err
	}
	return algorithm.New()
}
