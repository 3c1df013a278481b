// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

// Package hashgen computes lowercase hex digests of typed values: the
// fixed-width scalars byte, char, short, int, long, float and double,
// text in a named encoding, and homogeneous slices of any of these.
//
// Every value is first serialized to its canonical bytes (see
// [canon]): big-endian, two's complement for integers, raw IEEE-754
// bits for floats, one UTF-16 code unit for a char. Slices are the
// concatenation of their elements with no length prefix. The digest of
// those bytes is returned as hex, so equal values give equal digests
// on every platform.
//
// Two call shapes are offered. The package-level functions ([Hash],
// [HashSlice], [HashString], [HashStrings], [HashValue]) are stateless
// and safe for concurrent use; each call allocates its own buffer and
// hash. A [Generator] holds a configured algorithm, one hash instance
// and one scratch buffer per scalar kind, and reuses them across calls.
// A Generator is not safe for concurrent use; give each goroutine its
// own.
//
// Every buffer that held canonical bytes of a caller's value is zeroed
// before the call returns, including on error. Go strings passed in by
// the caller are immutable and cannot be wiped; callers hashing secret
// text should pass a byte or char slice and clear it themselves.
package hashgen
