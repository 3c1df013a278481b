// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package textenc

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/hashgen/hashgen/lib/secret"
)

var (
	// ErrEmptyName is returned for a blank encoding name.
	ErrEmptyName = errors.New("textenc: empty encoding name")

	// ErrUnsupportedEncoding is returned for names with no encoder, and
	// for an encoder that fails on input it cannot substitute.
	ErrUnsupportedEncoding = errors.New("textenc: unsupported encoding")
)

// Encoding is a resolved named text encoding. It is immutable and safe
// for concurrent use; each Encode call creates its own transformer.
type Encoding struct {
	name     string
	encoding encoding.Encoding

	// replacement is "?" in this encoding, written in place of each
	// character the encoding cannot represent.
	replacement []byte
}

// Lookup resolves an encoding name.
func Lookup(name string) (*Encoding, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrEmptyName
	}

	resolved, err := ianaindex.IANA.Encoding(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
	if resolved == nil {
		// Registered with IANA but not implemented by x/text.
		return nil, fmt.Errorf("%w: %q has no encoder", ErrUnsupportedEncoding, name)
	}

	// Prefer the MIME name ("ISO-8859-1") over the registry's formal
	// one ("ISO_8859-1:1987") when both exist.
	canonical, err := ianaindex.MIME.Name(resolved)
	if err != nil || canonical == "" {
		canonical, err = ianaindex.IANA.Name(resolved)
	}
	if err != nil || canonical == "" {
		canonical = trimmed
	}
	replacement, err := resolved.NewEncoder().Bytes([]byte("?"))
	if err != nil || len(replacement) == 0 {
		replacement = []byte("?")
	}
	return &Encoding{name: canonical, encoding: resolved, replacement: replacement}, nil
}

// Name returns the canonical IANA name of the encoding.
func (e *Encoding) Name() string {
	return e.name
}

// Encode returns text in this encoding. The caller owns the returned
// slice and should pass it to secret.Zero once it is no longer needed.
func (e *Encoding) Encode(text string) ([]byte, error) {
	source := []byte(text)
	defer secret.Zero(source)

	return e.transform(source)
}

// EncodeAll returns the concatenation of every element of texts in this
// encoding. The result is allocated once at its final size; per-element
// intermediates are zeroed before returning.
func (e *Encoding) EncodeAll(texts []string) ([]byte, error) {
	pieces := make([][]byte, 0, len(texts))
	defer func() {
		for _, piece := range pieces {
			secret.Zero(piece)
		}
	}()

	total := 0
	for index, text := range texts {
		piece, err := e.Encode(text)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", index, err)
		}
		pieces = append(pieces, piece)
		total += len(piece)
	}

	joined := make([]byte, 0, total)
	for _, piece := range pieces {
		joined = append(joined, piece...)
	}
	return joined, nil
}

// transform encodes source, replacing each unrepresentable character or
// invalid UTF-8 byte with e.replacement. Every abandoned output buffer
// is zeroed.
func (e *Encoding) transform(source []byte) ([]byte, error) {
	encoder := e.encoding.NewEncoder()
	destination := make([]byte, 2*len(source)+4)
	written := 0
	for {
		produced, consumed, err := encoder.Transform(destination[written:], source, true)
		written += produced
		source = source[consumed:]

		switch {
		case err == nil:
			secret.Zero(destination[written:])
			return destination[:written:written], nil
		case errors.Is(err, transform.ErrShortDst):
			destination = grow(destination, written, len(destination))
		case unrepresentable(err) && len(source) > 0:
			_, size := utf8.DecodeRune(source)
			source = source[size:]
			if len(destination)-written < len(e.replacement) {
				destination = grow(destination, written, len(destination)+len(e.replacement))
			}
			written += copy(destination[written:], e.replacement)
		default:
			secret.Zero(destination)
			return nil, fmt.Errorf("%w: encoding to %s: %v", ErrUnsupportedEncoding, e.name, err)
		}
	}
}

// unrepresentable reports whether err rejects a single input character:
// either a repertoire error from an x/text encoder, which carries a
// Replacement method, or invalid UTF-8 in the source.
func unrepresentable(err error) bool {
	var repertoire interface{ Replacement() byte }
	return errors.As(err, &repertoire) || errors.Is(err, encoding.ErrInvalidUTF8)
}

// grow returns a copy of the first written bytes of buffer in a larger
// buffer and zeroes buffer.
func grow(buffer []byte, written, extra int) []byte {
	larger := make([]byte, len(buffer)+extra)
	copy(larger, buffer[:written])
	secret.Zero(buffer)
	return larger
}
