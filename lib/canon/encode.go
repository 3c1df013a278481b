// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package canon

import (
	"encoding/binary"
	"math"
)

// Put writes the canonical encoding of value into the start of dst and
// returns the number of bytes written. It panics if dst is shorter than
// the kind's width, like binary.BigEndian.PutUint32.
func Put[T Scalar](dst []byte, value T) int {
	switch KindOf[T]() {
	case Byte:
		dst[0] = byte(value)
		return 1
	case Char, Short:
		binary.BigEndian.PutUint16(dst, uint16(value))
		return 2
	case Int:
		binary.BigEndian.PutUint32(dst, uint32(value))
		return 4
	case Long:
		binary.BigEndian.PutUint64(dst, uint64(value))
		return 8
	case Float:
		binary.BigEndian.PutUint32(dst, math.Float32bits(float32(value)))
		return 4
	case Double:
		binary.BigEndian.PutUint64(dst, math.Float64bits(float64(value)))
		return 8
	}
	panic("canon: unreachable kind")
}

// Append appends the canonical encoding of value to dst.
func Append[T Scalar](dst []byte, value T) []byte {
	width := KindOf[T]().Width()
	dst = grow(dst, width)
	Put(dst[len(dst)-width:], value)
	return dst
}

// AppendSlice appends the concatenated encodings of values to dst. The
// appended region is exactly EncodedLen[T](len(values)) bytes.
func AppendSlice[T Scalar](dst []byte, values []T) []byte {
	width := KindOf[T]().Width()
	start := len(dst)
	dst = grow(dst, width*len(values))
	offset := start
	for _, value := range values {
		offset += Put(dst[offset:], value)
	}
	return dst
}

// EncodedLen returns the encoded size of count values of type T.
func EncodedLen[T Scalar](count int) int {
	return KindOf[T]().Width() * count
}

// grow extends dst by n bytes without copying when capacity allows.
// Growing by reallocation would strand a copy of earlier plaintext in
// the old backing array, so callers that care size dst up front.
func grow(dst []byte, n int) []byte {
	if cap(dst)-len(dst) >= n {
		return dst[:len(dst)+n]
	}
	grown := make([]byte, len(dst)+n)
	copy(grown, dst)
	return grown
}
