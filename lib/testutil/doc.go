// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for hashgen packages.
//
// [RequireLockedMemory] skips a test when the process cannot mmap and
// mlock a small region, as happens under a zero RLIMIT_MEMLOCK in some
// containers and CI sandboxes. Tests of locked pools and generators
// call it first so that an environment limit reads as a skip rather
// than a failure of the code under test.
//
// [WriteFile] writes a fixture file into a per-test temporary
// directory and returns its path.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// Depends on lib/secret only. Tests in lib/secret itself cannot import
// this package.
package testutil
