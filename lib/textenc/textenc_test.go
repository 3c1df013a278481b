// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package textenc

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "UTF-8", want: "UTF-8"},
		{name: "utf-8", want: "UTF-8"},
		{name: "US-ASCII", want: "US-ASCII"},
		{name: "ISO-8859-1", want: "ISO-8859-1"},
		{name: "latin1", want: "ISO-8859-1"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			encoding, err := Lookup(test.name)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", test.name, err)
			}
			if encoding.Name() != test.want {
				t.Errorf("Lookup(%q).Name() = %q, want %q", test.name, encoding.Name(), test.want)
			}
		})
	}
}

func TestLookup_Empty(t *testing.T) {
	for _, name := range []string{"", "   "} {
		_, err := Lookup(name)
		if !errors.Is(err, ErrEmptyName) {
			t.Errorf("Lookup(%q) error = %v, want ErrEmptyName", name, err)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("NOT-A-CHARSET")
	if !errors.Is(err, ErrUnsupportedEncoding) {
		t.Errorf("Lookup(NOT-A-CHARSET) error = %v, want ErrUnsupportedEncoding", err)
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		encoding string
		text     string
		want     []byte
	}{
		{encoding: "UTF-8", text: "héllo", want: []byte{'h', 0xc3, 0xa9, 'l', 'l', 'o'}},
		{encoding: "ISO-8859-1", text: "héllo", want: []byte{'h', 0xe9, 'l', 'l', 'o'}},
		{encoding: "US-ASCII", text: "plain", want: []byte("plain")},
		{encoding: "UTF-8", text: "", want: []byte{}},
	}

	for _, test := range tests {
		t.Run(test.encoding+"/"+test.text, func(t *testing.T) {
			encoding, err := Lookup(test.encoding)
			if err != nil {
				t.Fatalf("Lookup: %v", err)
			}
			got, err := encoding.Encode(test.text)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if !bytes.Equal(got, test.want) {
				t.Errorf("Encode(%q) = %x, want %x", test.text, got, test.want)
			}
		})
	}
}

func TestEncode_GrowsForLongInput(t *testing.T) {
	encoding, err := Lookup("UTF-8")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	// Three bytes per rune overflows the initial 2n+4 estimate.
	text := strings.Repeat("€", 1000)
	got, err := encoding.Encode(text)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if string(got) != text {
		t.Errorf("Encode returned %d bytes, want %d", len(got), len(text))
	}
}

func TestEncode_SubstitutesUnrepresentable(t *testing.T) {
	tests := []struct {
		encoding string
		text     string
		want     string
	}{
		{encoding: "US-ASCII", text: "héllo", want: "h?llo"},
		{encoding: "US-ASCII", text: "naïve café", want: "na?ve caf?"},
		{encoding: "ISO-8859-1", text: "é世é", want: "\xe9?\xe9"},
		{encoding: "ISO-8859-1", text: "😀", want: "?"},
		{encoding: "UTF-8", text: "a\xffb", want: "a?b"},
	}
	for _, test := range tests {
		t.Run(test.encoding+"/"+test.text, func(t *testing.T) {
			encoding, err := Lookup(test.encoding)
			if err != nil {
				t.Fatalf("Lookup: %v", err)
			}
			got, err := encoding.Encode(test.text)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if string(got) != test.want {
				t.Errorf("Encode(%q) = %q, want %q", test.text, got, test.want)
			}
		})
	}
}

func TestEncode_ManySubstitutions(t *testing.T) {
	encoding, err := Lookup("US-ASCII")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	// One replacement per rune, interleaved with long mappable runs.
	text := strings.Repeat("é", 500) + strings.Repeat("x", 2000)
	got, err := encoding.Encode(text)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if want := strings.Repeat("?", 500) + strings.Repeat("x", 2000); string(got) != want {
		t.Errorf("Encode returned %d bytes, want %d", len(got), len(want))
	}
}

func TestEncodeAll(t *testing.T) {
	encoding, err := Lookup("UTF-8")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	got, err := encoding.EncodeAll([]string{"foo", "", "bar"})
	if err != nil {
		t.Fatalf("EncodeAll: %v", err)
	}
	if string(got) != "foobar" {
		t.Errorf("EncodeAll = %q, want %q", got, "foobar")
	}

	ascii, err := Lookup("US-ASCII")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	got, err = ascii.EncodeAll([]string{"ok", "café"})
	if err != nil {
		t.Fatalf("EncodeAll: %v", err)
	}
	if string(got) != "okcaf?" {
		t.Errorf("EncodeAll = %q, want %q", got, "okcaf?")
	}
}
