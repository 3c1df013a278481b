// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

// Package canon defines the canonical byte encoding of typed values
// before they are digested.
//
// Every supported scalar has a [Kind] with a fixed width:
//
//	Byte   1  int8 or uint8
//	Char   2  uint16 (one UTF-16 code unit)
//	Short  2  int16
//	Int    4  int32
//	Long   8  int64
//	Float  4  float32 (raw IEEE-754 bits)
//	Double 8  float64 (raw IEEE-754 bits)
//	String    variable, via a named text encoding (see lib/textenc)
//
// Fixed-width values are written big-endian, two's complement for
// signed integers. NaN and infinities keep their bit patterns. An array
// encodes as the concatenation of its elements' encodings, so a []int32
// of length n is exactly 4n bytes with no length prefix.
//
// [Put], [Append], and [AppendSlice] are generic over [Scalar], so named
// types with a supported underlying type encode like their underlying
// type. [ParseLiteral] and [FormatLiteral] convert between typed values
// and their textual form for the CLI and vector files.
//
// This package has no dependencies on other hashgen packages.
package canon
