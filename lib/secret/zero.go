// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import "runtime"

// Zero overwrites every byte of data with 0x00.
//
// The loop lives in a function the compiler may not inline, and the
// slice is kept alive past the last store, so the writes survive dead
// store elimination even when the caller never reads data again.
//
//go:noinline
func Zero(data []byte) {
	for index := range data {
		data[index] = 0
	}
	runtime.KeepAlive(data)
}

// IsZero reports whether every byte of data is 0x00. Tests and
// diagnostics use it to confirm a wipe happened.
func IsZero(data []byte) bool {
	for _, value := range data {
		if value != 0 {
			return false
		}
	}
	return true
}
