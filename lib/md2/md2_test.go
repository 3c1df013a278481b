// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package md2

import (
	"encoding/hex"
	"strings"
	"testing"
)

// Test suite from RFC 1319, appendix A.5.
var rfcVectors = []struct {
	input string
	want  string
}{
	{input: "", want: "8350e5a3e24c153df2275c9f80692773"},
	{input: "a", want: "32ec01ec4a6dac72c0ab96fb34c0b5d1"},
	{input: "abc", want: "da853b0d3f88d99b30283a69e6ded6bb"},
	{input: "message digest", want: "ab4f496bfb2a530b219ff33031fe06b0"},
	{input: strings.Repeat("1234567890", 8), want: "d5976f79d83d3a0dc9806c3c66f3efd8"},
}

func TestSum(t *testing.T) {
	for _, vector := range rfcVectors {
		got := Sum([]byte(vector.input))
		if hex.EncodeToString(got[:]) != vector.want {
			t.Errorf("Sum(%q) = %x, want %s", vector.input, got, vector.want)
		}
	}
}

func TestHash_ChunkedWrites(t *testing.T) {
	for _, vector := range rfcVectors {
		for _, chunk := range []int{1, 3, 16, 17} {
			h := New()
			data := []byte(vector.input)
			for len(data) > 0 {
				n := min(chunk, len(data))
				h.Write(data[:n])
				data = data[n:]
			}
			if got := hex.EncodeToString(h.Sum(nil)); got != vector.want {
				t.Errorf("chunk %d: digest(%q) = %s, want %s", chunk, vector.input, got, vector.want)
			}
		}
	}
}

func TestHash_SumDoesNotChangeState(t *testing.T) {
	h := New()
	h.Write([]byte("ab"))
	h.Sum(nil)
	h.Write([]byte("c"))
	if got := hex.EncodeToString(h.Sum(nil)); got != "da853b0d3f88d99b30283a69e6ded6bb" {
		t.Errorf("digest after intermediate Sum = %s", got)
	}
}

func TestHash_ResetClearsState(t *testing.T) {
	h := New()
	h.Write([]byte("partial block"))
	h.Reset()

	d := h.(*digest)
	for _, field := range [][]byte{d.state[:], d.checksum[:], d.block[:]} {
		for index, value := range field {
			if value != 0 {
				t.Fatalf("byte %d not cleared after Reset: %d", index, value)
			}
		}
	}
	if d.filled != 0 {
		t.Errorf("filled = %d after Reset, want 0", d.filled)
	}
	if got := hex.EncodeToString(h.Sum(nil)); got != rfcVectors[0].want {
		t.Errorf("digest after Reset = %s, want empty-input digest", got)
	}
}

func TestHash_Sizes(t *testing.T) {
	h := New()
	if h.Size() != Size || h.BlockSize() != BlockSize {
		t.Errorf("Size/BlockSize = %d/%d, want %d/%d", h.Size(), h.BlockSize(), Size, BlockSize)
	}
}
