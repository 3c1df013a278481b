// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

// Package bufpool keeps one scratch buffer per fixed-width [canon.Kind]
// so repeated scalar digests reuse the same memory instead of
// allocating per call.
//
// Each entry is created on the first [Pool.Get] for its kind with
// exactly the requested size and is zero-filled, never reallocated, on
// every later Get. The backing memory comes from an [Allocator]: [Heap]
// for ordinary Go slices, [Locked] for mmap'd, mlock'd pages from
// [secret.New] that stay out of swap and core dumps.
//
// A Pool is not safe for concurrent use.
package bufpool
