// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package hashgen

import (
	"errors"
	"fmt"

	"github.com/hashgen/hashgen/lib/canon"
	"github.com/hashgen/hashgen/lib/digest"
	"github.com/hashgen/hashgen/lib/secret"
	"github.com/hashgen/hashgen/lib/textenc"
)

var (
	// ErrNotConfigured is returned by Generator methods called before
	// an algorithm is set.
	ErrNotConfigured = digest.ErrNotConfigured

	// ErrInvalidArgument is returned for an Unset algorithm passed to
	// a stateless function and for a blank encoding name.
	ErrInvalidArgument = digest.ErrInvalidArgument

	// ErrUnsupportedAlgorithm is returned for unknown algorithms.
	ErrUnsupportedAlgorithm = digest.ErrUnsupportedAlgorithm

	// ErrUnsupportedEncoding is returned for encoding names with no
	// encoder.
	ErrUnsupportedEncoding = textenc.ErrUnsupportedEncoding
)

// Hash returns the hex digest of one scalar value.
func Hash[T canon.Scalar](value T, algorithm digest.Algorithm) (string, error) {
	if err := checkAlgorithm(algorithm); err != nil {
		return "", err
	}
	buffer := make([]byte, canon.KindOf[T]().Width())
	defer secret.Zero(buffer)
	canon.Put(buffer, value)
	return sumHex(buffer, algorithm)
}

// HashSlice returns the hex digest of the concatenated encodings of
// values. A nil or empty slice digests the empty input.
func HashSlice[T canon.Scalar](values []T, algorithm digest.Algorithm) (string, error) {
	if err := checkAlgorithm(algorithm); err != nil {
		return "", err
	}
	buffer := canon.AppendSlice(make([]byte, 0, canon.EncodedLen[T](len(values))), values)
	defer secret.Zero(buffer)
	return sumHex(buffer, algorithm)
}

// HashString returns the hex digest of text encoded in the named
// encoding ("UTF-8", "ISO-8859-1", ...).
func HashString(text, encoding string, algorithm digest.Algorithm) (string, error) {
	if err := checkAlgorithm(algorithm); err != nil {
		return "", err
	}
	resolved, err := lookupEncoding(encoding)
	if err != nil {
		return "", err
	}
	buffer, err := resolved.Encode(text)
	defer secret.Zero(buffer)
	if err != nil {
		return "", err
	}
	return sumHex(buffer, algorithm)
}

// HashStrings returns the hex digest of the concatenated encodings of
// texts.
func HashStrings(texts []string, encoding string, algorithm digest.Algorithm) (string, error) {
	if err := checkAlgorithm(algorithm); err != nil {
		return "", err
	}
	resolved, err := lookupEncoding(encoding)
	if err != nil {
		return "", err
	}
	buffer, err := resolved.EncodeAll(texts)
	defer secret.Zero(buffer)
	if err != nil {
		return "", err
	}
	return sumHex(buffer, algorithm)
}

func checkAlgorithm(algorithm digest.Algorithm) error {
	if algorithm == digest.Unset {
		return fmt.Errorf("%w: no algorithm given", ErrInvalidArgument)
	}
	if !algorithm.Valid() {
		return fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, algorithm)
	}
	return nil
}

// lookupEncoding reports a blank name as ErrInvalidArgument; the name
// is never defaulted.
func lookupEncoding(name string) (*textenc.Encoding, error) {
	resolved, err := textenc.Lookup(name)
	if err != nil {
		if errors.Is(err, textenc.ErrEmptyName) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
		return nil, err
	}
	return resolved, nil
}

func sumHex(data []byte, algorithm digest.Algorithm) (string, error) {
	sum, err := digest.Sum(data, algorithm)
	if err != nil {
		return "", err
	}
	return digest.ToHex(sum), nil
}
