// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package vectors

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashgen/hashgen/lib/codec"
	"github.com/hashgen/hashgen/lib/digest"
)

func sampleSet(t *testing.T) *Set {
	t.Helper()
	set, err := Generate(GenerateOptions{Algorithms: []digest.Algorithm{digest.SHA256, digest.MD2}})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return set
}

func TestWriteRead_Compressions(t *testing.T) {
	set := sampleSet(t)
	tests := []struct {
		name     string
		fileName string
		fallback Compression
		magic    []byte
	}{
		{name: "plain", fileName: "vectors.cbor", fallback: CompressionNone},
		{name: "zstd by extension", fileName: "vectors.cbor.zst", fallback: CompressionNone, magic: zstdMagic},
		{name: "lz4 by extension", fileName: "vectors.cbor.lz4", fallback: CompressionNone, magic: lz4Magic},
		{name: "zstd by fallback", fileName: "vectors.bin", fallback: CompressionZstd, magic: zstdMagic},
		{name: "extension beats fallback", fileName: "vectors.lz4", fallback: CompressionZstd, magic: lz4Magic},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), test.fileName)
			if err := Write(path, set, test.fallback); err != nil {
				t.Fatalf("Write: %v", err)
			}

			raw, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}
			if test.magic != nil && !bytes.HasPrefix(raw, test.magic) {
				t.Errorf("file starts with %x, want magic %x", raw[:4], test.magic)
			}
			if test.magic == nil && detectCompression(raw) != CompressionNone {
				t.Errorf("plain file detected as %v", detectCompression(raw))
			}

			loaded, err := Read(path)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if len(loaded.Vectors) != len(set.Vectors) {
				t.Fatalf("read %d vectors, wrote %d", len(loaded.Vectors), len(set.Vectors))
			}
			for index := range set.Vectors {
				want, got := set.Vectors[index], loaded.Vectors[index]
				if got.ID != want.ID || got.Kind != want.Kind || got.Shape != want.Shape ||
					got.Algorithm != want.Algorithm || got.Digest != want.Digest || got.Encoding != want.Encoding {
					t.Fatalf("vector %d = %+v, want %+v", index, got, want)
				}
			}
		})
	}
}

func TestReadRaw_ReturnsDecompressedCBOR(t *testing.T) {
	set := sampleSet(t)
	path := filepath.Join(t.TempDir(), "vectors.lz4")
	if err := Write(path, set, CompressionNone); err != nil {
		t.Fatalf("Write: %v", err)
	}
	raw, err := ReadRaw(path)
	if err != nil {
		t.Fatalf("ReadRaw: %v", err)
	}
	want, err := codec.Marshal(set)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(raw, want) {
		t.Errorf("ReadRaw returned %d bytes, want the %d-byte CBOR encoding", len(raw), len(want))
	}
}

func TestWrite_LeavesNoTemporaryFiles(t *testing.T) {
	directory := t.TempDir()
	if err := Write(filepath.Join(directory, "set.zst"), sampleSet(t), CompressionNone); err != nil {
		t.Fatalf("Write: %v", err)
	}
	entries, err := os.ReadDir(directory)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}

func TestUnmarshal_RejectsBadSets(t *testing.T) {
	wrongVersion := &Set{Version: FormatVersion + 1}
	data, err := Marshal(wrongVersion, CompressionNone)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if _, err := Unmarshal(data); err == nil {
		t.Error("Unmarshal accepted a future version")
	}

	set := sampleSet(t)
	set.Vectors[0].Digest = "abcd"
	data, err = Marshal(set, CompressionLZ4)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if _, err := Unmarshal(data); err == nil {
		t.Error("Unmarshal accepted a truncated digest")
	}

	corrupt := append([]byte(nil), zstdMagic...)
	corrupt = append(corrupt, 0xff, 0xff, 0xff)
	if _, err := Unmarshal(corrupt); err == nil {
		t.Error("Unmarshal accepted a corrupt zstd frame")
	}
}

func TestRead_MissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "absent.cbor")); err == nil {
		t.Error("Read of a missing file succeeded")
	}
}

func TestParseCompression(t *testing.T) {
	tests := []struct {
		input string
		want  Compression
	}{
		{"", CompressionNone},
		{"none", CompressionNone},
		{"ZSTD", CompressionZstd},
		{"lz4", CompressionLZ4},
	}
	for _, test := range tests {
		got, err := ParseCompression(test.input)
		if err != nil {
			t.Fatalf("ParseCompression(%q): %v", test.input, err)
		}
		if got != test.want {
			t.Errorf("ParseCompression(%q) = %v, want %v", test.input, got, test.want)
		}
	}
	if _, err := ParseCompression("gzip"); err == nil {
		t.Error("ParseCompression(gzip) succeeded")
	}
}

func TestDecompress_RejectsOversizedPayload(t *testing.T) {
	payload := make([]byte, maxDecodedSize+1)
	for _, compression := range []Compression{CompressionZstd, CompressionLZ4} {
		t.Run(compression.String(), func(t *testing.T) {
			compressed, err := compress(payload, compression)
			if err != nil {
				t.Fatalf("compress: %v", err)
			}
			if _, err := decompress(compressed); err == nil {
				t.Error("decompress accepted a payload over the size limit")
			}
		})
	}
}
