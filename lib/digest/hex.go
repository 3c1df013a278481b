// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"encoding/hex"
	"fmt"
)

// ToHex returns the lowercase hexadecimal form of a digest: two
// characters per byte, most significant nibble first.
func ToHex(digest []byte) string {
	return hex.EncodeToString(digest)
}

// ParseHex decodes digest text produced by ToHex and checks that its
// length matches the algorithm. Upper-case digits are accepted.
func ParseHex(text string, algorithm Algorithm) ([]byte, error) {
	if !algorithm.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, algorithm)
	}
	decoded, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("parsing %v digest: %w", algorithm, err)
	}
	if len(decoded) != algorithm.Size() {
		return nil, fmt.Errorf("%v digest is %d bytes, want %d", algorithm, len(decoded), algorithm.Size())
	}
	return decoded, nil
}
