// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashgen/hashgen/lib/secret"
)

// RequireLockedMemory skips t unless a locked secret.Buffer can be
// allocated.
func RequireLockedMemory(t testing.TB) {
	t.Helper()
	probe, err := secret.New(os.Getpagesize())
	if err != nil {
		t.Skipf("locked memory unavailable: %v", err)
	}
	if err := probe.Close(); err != nil {
		t.Fatalf("closing locked probe buffer: %v", err)
	}
}

// WriteFile writes content to name inside a fresh temporary directory
// and returns the full path.
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}
