// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashgen/hashgen/cmd/hashgen/cli"
	"github.com/hashgen/hashgen/lib/digest"
	"github.com/hashgen/hashgen/lib/testutil"
	"github.com/hashgen/hashgen/lib/vectors"
)

func generateVectors(t *testing.T, name string, extra ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	args := append([]string{"vectors", "generate", "--out", path, "--algorithms", "MD5,SHA-256"}, extra...)
	output, err := execute(t, args...)
	if err != nil {
		t.Fatalf("vectors generate: %v", err)
	}
	if !strings.HasPrefix(output, "wrote ") {
		t.Errorf("generate output = %q", output)
	}
	return path
}

func TestVectors_GenerateVerify(t *testing.T) {
	for _, name := range []string{"set.cbor", "set.cbor.zst", "set.cbor.lz4"} {
		t.Run(name, func(t *testing.T) {
			path := generateVectors(t, name)
			output, err := execute(t, "vectors", "verify", "--workers", "3", path)
			if err != nil {
				t.Fatalf("vectors verify: %v\n%s", err, output)
			}
			if !strings.HasPrefix(output, "ok: ") {
				t.Errorf("verify output = %q, want ok", output)
			}
		})
	}
}

func TestVectors_GenerateCompressionFromConfig(t *testing.T) {
	configPath := testutil.WriteFile(t, "hashgen.yaml", "vectors:\n  compression: zstd\n")
	path := filepath.Join(t.TempDir(), "set.bin")
	output, err := execute(t, "vectors", "generate", "--out", path, "--algorithms", "SHA-1", "--config", configPath)
	if err != nil {
		t.Fatalf("vectors generate: %v", err)
	}
	if !strings.Contains(output, "(zstd)") {
		t.Errorf("generate output = %q, want zstd compression", output)
	}
	if _, err := vectors.Read(path); err != nil {
		t.Errorf("Read: %v", err)
	}
}

func TestVectors_VerifyReportsMismatches(t *testing.T) {
	path := generateVectors(t, "set.cbor")
	set, err := vectors.Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	// A well-formed digest of the right length that no vector produces.
	set.Vectors[0].Digest = strings.Repeat("0", 2*set.Vectors[0].Algorithm.Size())
	if err := vectors.Write(path, set, vectors.CompressionNone); err != nil {
		t.Fatalf("Write: %v", err)
	}

	output, err := execute(t, "vectors", "verify", path)
	var exitError *cli.ExitError
	if !errors.As(err, &exitError) || exitError.ExitCode() != 1 {
		t.Fatalf("verify error = %v, want exit code 1", err)
	}
	if !strings.Contains(output, "FAIL "+set.Vectors[0].ID) {
		t.Errorf("verify output does not name the tampered vector:\n%s", output)
	}
	if !strings.Contains(output, "stateless") || !strings.Contains(output, "generator") {
		t.Errorf("verify output should report both paths:\n%s", output)
	}
}

func TestVectors_Show(t *testing.T) {
	path := generateVectors(t, "set.cbor.lz4")

	output, err := execute(t, "vectors", "show", path)
	if err != nil {
		t.Fatalf("vectors show: %v", err)
	}
	var shown struct {
		Version int `json:"version"`
		Vectors []struct {
			ID        string `json:"id"`
			Kind      string `json:"kind"`
			Algorithm string `json:"algorithm"`
		} `json:"vectors"`
	}
	if err := json.Unmarshal([]byte(output), &shown); err != nil {
		t.Fatalf("show output is not JSON: %v", err)
	}
	if shown.Version != vectors.FormatVersion || len(shown.Vectors) == 0 {
		t.Fatalf("show = version %d with %d vectors", shown.Version, len(shown.Vectors))
	}
	if shown.Vectors[0].Algorithm != digest.MD5.String() {
		t.Errorf("first vector algorithm = %q, want %q", shown.Vectors[0].Algorithm, digest.MD5)
	}

	output, err = execute(t, "vectors", "show", "--diagnose", path)
	if err != nil {
		t.Fatalf("vectors show --diagnose: %v", err)
	}
	if !strings.Contains(output, `"version"`) || !strings.Contains(output, `"MD5"`) {
		t.Errorf("diagnostic output missing expected text:\n%.200s", output)
	}
}

func TestVectors_Errors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.cbor")
	for _, args := range [][]string{
		{"vectors", "generate"},
		{"vectors", "generate", "--out", filepath.Join(t.TempDir(), "x.cbor"), "--algorithms", "SHA-999"},
		{"vectors", "verify"},
		{"vectors", "verify", missing},
		{"vectors", "show", missing},
		{"vectors", "frobnicate"},
	} {
		if _, err := execute(t, args...); err == nil {
			t.Errorf("%v succeeded", args)
		}
	}
}
