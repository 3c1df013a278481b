// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package vectors

import (
	"fmt"

	"github.com/hashgen/hashgen/lib/canon"
	"github.com/hashgen/hashgen/lib/digest"
)

// GenerateOptions selects what Generate covers.
type GenerateOptions struct {
	// Algorithms to digest every sample under. Empty means all of
	// digest.Algorithms.
	Algorithms []digest.Algorithm

	// Encoding for string samples. Empty means "UTF-8". The built-in
	// samples are ASCII, so any ASCII-compatible encoding works.
	Encoding string
}

// Generate builds the built-in sample set: every kind, as scalars and
// as arrays, under every requested algorithm. The output order is
// stable, so the encoded set is byte-identical across runs.
func Generate(options GenerateOptions) (*Set, error) {
	algorithms := options.Algorithms
	if len(algorithms) == 0 {
		algorithms = digest.Algorithms
	}
	encoding := options.Encoding
	if encoding == "" {
		encoding = "UTF-8"
	}

	set := &Set{Version: FormatVersion}
	for _, kind := range canon.Kinds {
		for index, literal := range scalarSamples[kind] {
			if err := set.add(kind, canon.ShapeScalar, index, []string{literal}, encoding, algorithms); err != nil {
				return nil, err
			}
		}
		for index, literals := range arraySamples[kind] {
			if err := set.add(kind, canon.ShapeArray, index, literals, encoding, algorithms); err != nil {
				return nil, err
			}
		}
	}
	return set, nil
}

func (s *Set) add(kind canon.Kind, shape canon.Shape, index int, literals []string, encoding string, algorithms []digest.Algorithm) error {
	for _, algorithm := range algorithms {
		vector := Vector{
			ID:        fmt.Sprintf("%s_%s_%d", kind, shape, index),
			Kind:      kind,
			Shape:     shape,
			Values:    literals,
			Algorithm: algorithm,
		}
		if kind == canon.String {
			vector.Encoding = encoding
		}
		computed, err := vector.Compute()
		if err != nil {
			return fmt.Errorf("generating %s under %v: %w", vector.ID, algorithm, err)
		}
		vector.Digest = computed
		s.Vectors = append(s.Vectors, vector)
	}
	return nil
}
