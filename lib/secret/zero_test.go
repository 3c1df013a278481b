// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import "testing"

func TestZero(t *testing.T) {
	data := []byte("canonical plaintext")
	Zero(data)

	for index, value := range data {
		if value != 0 {
			t.Fatalf("byte %d was not zeroed: got %d", index, value)
		}
	}
}

func TestZero_Empty(t *testing.T) {
	// Must not panic on nil or empty input.
	Zero(nil)
	Zero([]byte{})
}

func TestZero_SubsliceLeavesRestIntact(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6}
	Zero(data[1:4])

	want := []byte{1, 0, 0, 0, 5, 6}
	for index := range data {
		if data[index] != want[index] {
			t.Fatalf("data = %v, want %v", data, want)
		}
	}
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{name: "nil", data: nil, want: true},
		{name: "all zero", data: make([]byte, 16), want: true},
		{name: "leading byte", data: []byte{1, 0, 0}, want: false},
		{name: "trailing byte", data: []byte{0, 0, 0x80}, want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := IsZero(test.data); got != test.want {
				t.Errorf("IsZero(%v) = %v, want %v", test.data, got, test.want)
			}
		})
	}
}
