// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package vectors

import (
	"fmt"

	"github.com/hashgen/hashgen/lib/canon"
	"github.com/hashgen/hashgen/lib/digest"
	"github.com/hashgen/hashgen/lib/hashgen"
)

// FormatVersion is written into every Set and checked by Read.
const FormatVersion = 1

// Vector is one known-answer digest.
type Vector struct {
	// ID names the value independently of the algorithm:
	// "<kind>_<shape>_<index>", for example "short_array_0".
	ID        string           `json:"id"`
	Kind      canon.Kind       `json:"kind"`
	Shape     canon.Shape      `json:"shape"`
	Values    []string         `json:"values"`
	Encoding  string           `json:"encoding,omitempty"`
	Algorithm digest.Algorithm `json:"algorithm"`
	Digest    string           `json:"digest"`
}

// Set is the unit stored in a vector file.
type Set struct {
	Version int      `json:"version"`
	Vectors []Vector `json:"vectors"`
}

// Value parses the vector's literals into the typed value hashgen
// hashes: a scalar for ShapeScalar, a slice for ShapeArray.
func (v *Vector) Value() (any, error) {
	switch v.Shape {
	case canon.ShapeScalar:
		if len(v.Values) != 1 {
			return nil, fmt.Errorf("vector %s: scalar has %d values", v.ID, len(v.Values))
		}
		value, err := canon.ParseLiteral(v.Kind, v.Values[0])
		if err != nil {
			return nil, fmt.Errorf("vector %s: %w", v.ID, err)
		}
		return value, nil
	case canon.ShapeArray:
		values, err := canon.ParseLiterals(v.Kind, v.Values)
		if err != nil {
			return nil, fmt.Errorf("vector %s: %w", v.ID, err)
		}
		return values, nil
	}
	return nil, fmt.Errorf("vector %s: unknown shape %v", v.ID, v.Shape)
}

// Compute returns the digest of the vector's value under its
// algorithm, using the stateless hashgen functions.
func (v *Vector) Compute() (string, error) {
	value, err := v.Value()
	if err != nil {
		return "", err
	}
	return hashgen.HashValue(value, v.Encoding, v.Algorithm)
}

// Validate checks the fields a reader cannot recover from: a known
// kind and algorithm, an encoding for text, and a digest of the right
// length.
func (v *Vector) Validate() error {
	if v.Kind == canon.Invalid {
		return fmt.Errorf("vector %s: missing kind", v.ID)
	}
	if v.Kind == canon.String && v.Encoding == "" {
		return fmt.Errorf("vector %s: string vector has no encoding", v.ID)
	}
	if _, err := digest.ParseHex(v.Digest, v.Algorithm); err != nil {
		return fmt.Errorf("vector %s: %w", v.ID, err)
	}
	return nil
}
