// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package hashgen

import (
	"fmt"

	"github.com/hashgen/hashgen/lib/canon"
	"github.com/hashgen/hashgen/lib/digest"
	"github.com/hashgen/hashgen/lib/secret"
)

// HashValue digests a dynamically typed value: one of int8, uint8,
// uint16, int16, int32, int64, float32, float64, string, or a slice of
// any of them. encoding is used only for string values. It is the entry
// point for callers that decode values at runtime, such as vector files
// and the command line.
func HashValue(value any, encoding string, algorithm digest.Algorithm) (string, error) {
	if err := checkAlgorithm(algorithm); err != nil {
		return "", err
	}
	buffer, err := Encode(value, encoding)
	defer secret.Zero(buffer)
	if err != nil {
		return "", err
	}
	return sumHex(buffer, algorithm)
}

// Encode returns the canonical encoding of a value accepted by
// HashValue: the exact bytes HashValue digests. The caller owns the
// result and should wipe it with secret.Zero.
func Encode(value any, encoding string) ([]byte, error) {
	switch typed := value.(type) {
	case int8:
		return canon.Append(nil, typed), nil
	case uint8:
		return canon.Append(nil, typed), nil
	case uint16:
		return canon.Append(nil, typed), nil
	case int16:
		return canon.Append(nil, typed), nil
	case int32:
		return canon.Append(nil, typed), nil
	case int64:
		return canon.Append(nil, typed), nil
	case float32:
		return canon.Append(nil, typed), nil
	case float64:
		return canon.Append(nil, typed), nil
	case []int8:
		return encodeSlice(typed), nil
	case []uint8:
		return encodeSlice(typed), nil
	case []uint16:
		return encodeSlice(typed), nil
	case []int16:
		return encodeSlice(typed), nil
	case []int32:
		return encodeSlice(typed), nil
	case []int64:
		return encodeSlice(typed), nil
	case []float32:
		return encodeSlice(typed), nil
	case []float64:
		return encodeSlice(typed), nil
	case string:
		resolved, err := lookupEncoding(encoding)
		if err != nil {
			return nil, err
		}
		return resolved.Encode(typed)
	case []string:
		resolved, err := lookupEncoding(encoding)
		if err != nil {
			return nil, err
		}
		return resolved.EncodeAll(typed)
	}
	return nil, fmt.Errorf("%w: unsupported value type %T", ErrInvalidArgument, value)
}

func encodeSlice[T canon.Scalar](values []T) []byte {
	return canon.AppendSlice(make([]byte, 0, canon.EncodedLen[T](len(values))), values)
}

// HashValue is the Generator form of the package-level HashValue.
// Scalars go through the pooled scratch buffers.
func (g *Generator) HashValue(value any, encoding string) (string, error) {
	switch typed := value.(type) {
	case int8:
		return g.HashByte(typed)
	case uint8:
		return hashPooled(g, typed)
	case uint16:
		return g.HashChar(typed)
	case int16:
		return g.HashShort(typed)
	case int32:
		return g.HashInt(typed)
	case int64:
		return g.HashLong(typed)
	case float32:
		return g.HashFloat(typed)
	case float64:
		return g.HashDouble(typed)
	case string:
		return g.HashString(typed, encoding)
	case []int8:
		return hashFresh(g, typed)
	case []uint8:
		return g.HashBytes(typed)
	case []uint16:
		return g.HashChars(typed)
	case []int16:
		return g.HashShorts(typed)
	case []int32:
		return g.HashInts(typed)
	case []int64:
		return g.HashLongs(typed)
	case []float32:
		return g.HashFloats(typed)
	case []float64:
		return g.HashDoubles(typed)
	case []string:
		return g.HashStrings(typed, encoding)
	}
	if err := g.ready(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("%w: unsupported value type %T", ErrInvalidArgument, value)
}
