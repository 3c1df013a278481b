// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

// Package vectors generates, stores and checks sets of known-answer
// digests: a value of some kind and shape, the algorithm and text
// encoding it was hashed under, and the expected hex digest.
//
// Values are stored as literals in the form canon.ParseLiteral reads,
// so a file is independent of Go's in-memory layout. Sets are
// serialized as deterministic CBOR (see lib/codec) and may be
// compressed: [Write] picks zstd for a ".zst" path and LZ4 frames for
// ".lz4"; [Read] recognizes either by magic number.
//
// [Verify] recomputes every vector twice, once with the stateless
// hashgen functions and once with a hashgen.Generator, spreading the
// work over a bounded pool of goroutines that each own one Generator.
package vectors
