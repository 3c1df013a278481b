// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret holds the zeroization primitives used by the hashing
// engine.
//
// [Zero] overwrites a byte slice with zeros in a way the compiler cannot
// discard as a dead store. Every buffer that held the canonical encoding
// of caller data is passed through Zero before the call that filled it
// returns, on success and error paths alike.
//
// [Buffer] allocates scratch memory outside the Go heap via
// mmap(MAP_ANONYMOUS), locks it into physical RAM via mlock (preventing
// swap), and marks it excluded from core dumps via
// madvise(MADV_DONTDUMP). The garbage collector never sees or copies
// this memory, so a pooled scratch buffer never leaves stale copies
// behind after a heap move. On Close, the memory is zeroed, unlocked,
// and unmapped.
//
// Constructors:
//
//   - [New] -- allocates a zero-filled locked buffer of a given size
//   - [NewFromBytes] -- copies into locked memory, zeros the source
//   - [ReadFromPath] -- reads a file (or stdin for "-") into locked memory
//
// Immutable Go strings cannot be wiped. Callers holding secret text
// should keep it in a []byte (or a Buffer) and hash that form instead.
//
// Depends on golang.org/x/sys/unix. No other hashgen dependencies.
package secret
