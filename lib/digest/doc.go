// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

// Package digest is the digest primitive layer of hashgen: the
// [Algorithm] registry, a stateless [Sum], a reusable [Context] for
// repeated digests under one algorithm, and the hex text form of a
// digest ([ToHex], [ParseHex]).
//
// Algorithms are identified by the names used throughout hashgen's
// configuration and vector files: "MD2", "MD5", "SHA-1", "SHA-256",
// "SHA-384", "SHA-512", "SHA3-256", "SHA3-512", "BLAKE2b-256",
// "BLAKE2b-512" and "BLAKE3". MD2, MD5 and SHA-1 are present for
// compatibility with existing digests only.
//
// A [Context] is not safe for concurrent use. [Sum] is.
package digest
