// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec holds hashgen's CBOR configuration, used for test
// vector files.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. A
// vector set therefore always encodes to the same bytes, and a file
// digest can be compared across machines.
//
//	data, err := codec.Marshal(set)
//	err = codec.Unmarshal(data, &set)
//
// Types implementing encoding.TextMarshaler (canon.Kind, canon.Shape,
// digest.Algorithm) travel as CBOR text strings, so a file reads as
// "SHA-256" rather than an enum ordinal that would change meaning if
// the enum were reordered.
//
// Decoding is strict: a map key that names no struct field and a
// repeated map key are both errors, so a hand-edited vector file with a
// misspelled field fails to load instead of silently losing the value.
// [Diagnose] renders byte strings as h'..' hex.
//
// Vector types carry `json` struct tags; fxamacker/cbor falls back to
// them when no `cbor` tag is present, so one tag names the field in
// both the CBOR file and the CLI's JSON output.
package codec
