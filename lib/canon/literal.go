// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package canon

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Quiet NaN bit patterns with an empty payload.
const (
	quietNaN32 = 0x7fc00000
	quietNaN64 = 0x7ff8000000000000
)

// ParseLiteral converts text to a value of the given kind. The returned
// value has the base Go type for the kind: int8, uint16, int16, int32,
// int64, float32, float64, or string.
//
// Integers accept Go literal syntax (decimal, 0x, 0o, 0b, underscores).
// A Byte also accepts 128..255, stored as the same bit pattern in an
// int8. A Char is either a single character from the Basic
// Multilingual Plane or a code unit written as 0x0061 or U+0061.
// Floats accept anything strconv.ParseFloat does, including "NaN" and
// "-Inf"; a NaN literal yields the quiet NaN with no payload
// (0x7fc00000, 0x7ff8000000000000). Strings are returned verbatim.
func ParseLiteral(kind Kind, text string) (any, error) {
	switch kind {
	case Byte:
		if value, err := strconv.ParseInt(text, 0, 8); err == nil {
			return int8(value), nil
		}
		value, err := strconv.ParseUint(text, 0, 8)
		if err != nil {
			return nil, fmt.Errorf("canon: parsing byte %q: %w", text, err)
		}
		return int8(uint8(value)), nil
	case Char:
		return parseChar(text)
	case Short:
		value, err := strconv.ParseInt(text, 0, 16)
		if err != nil {
			return nil, fmt.Errorf("canon: parsing short %q: %w", text, err)
		}
		return int16(value), nil
	case Int:
		value, err := strconv.ParseInt(text, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("canon: parsing int %q: %w", text, err)
		}
		return int32(value), nil
	case Long:
		value, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("canon: parsing long %q: %w", text, err)
		}
		return value, nil
	case Float:
		value, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return nil, fmt.Errorf("canon: parsing float %q: %w", text, err)
		}
		if math.IsNaN(value) {
			return math.Float32frombits(quietNaN32), nil
		}
		return float32(value), nil
	case Double:
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("canon: parsing double %q: %w", text, err)
		}
		if math.IsNaN(value) {
			return math.Float64frombits(quietNaN64), nil
		}
		return value, nil
	case String:
		return text, nil
	}
	return nil, fmt.Errorf("canon: cannot parse literal of %v", kind)
}

func parseChar(text string) (uint16, error) {
	lower := strings.ToLower(text)
	if strings.HasPrefix(lower, "0x") || strings.HasPrefix(lower, "u+") {
		value, err := strconv.ParseUint(text[2:], 16, 16)
		if err != nil {
			return 0, fmt.Errorf("canon: parsing char %q: %w", text, err)
		}
		return uint16(value), nil
	}
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 || size != len(text) || r == utf8.RuneError {
		return 0, fmt.Errorf("canon: char %q must be a single character or a 0x/U+ code unit", text)
	}
	if r > 0xFFFF {
		return 0, fmt.Errorf("canon: char %q is outside the Basic Multilingual Plane", text)
	}
	return uint16(r), nil
}

// ParseLiterals parses each element of texts as kind and returns a
// slice of the matching base type ([]int8, []uint16, ... []string).
func ParseLiterals(kind Kind, texts []string) (any, error) {
	switch kind {
	case Byte:
		return parseEach[int8](kind, texts)
	case Char:
		return parseEach[uint16](kind, texts)
	case Short:
		return parseEach[int16](kind, texts)
	case Int:
		return parseEach[int32](kind, texts)
	case Long:
		return parseEach[int64](kind, texts)
	case Float:
		return parseEach[float32](kind, texts)
	case Double:
		return parseEach[float64](kind, texts)
	case String:
		return append([]string(nil), texts...), nil
	}
	return nil, fmt.Errorf("canon: cannot parse literals of %v", kind)
}

func parseEach[T any](kind Kind, texts []string) ([]T, error) {
	values := make([]T, len(texts))
	for index, text := range texts {
		parsed, err := ParseLiteral(kind, text)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", index, err)
		}
		values[index] = parsed.(T)
	}
	return values, nil
}

// FormatLiteral renders a scalar value so that ParseLiteral with the
// same kind returns an identical value (NaN payloads aside). Chars are
// written as 0x-prefixed code units so that control characters and
// lone surrogates survive the round trip.
func FormatLiteral(value any) (string, error) {
	switch typed := value.(type) {
	case int8:
		return strconv.FormatInt(int64(typed), 10), nil
	case uint8:
		return strconv.FormatInt(int64(int8(typed)), 10), nil
	case uint16:
		return fmt.Sprintf("0x%04x", typed), nil
	case int16:
		return strconv.FormatInt(int64(typed), 10), nil
	case int32:
		return strconv.FormatInt(int64(typed), 10), nil
	case int64:
		return strconv.FormatInt(typed, 10), nil
	case float32:
		return formatFloat(float64(typed), 32), nil
	case float64:
		return formatFloat(typed, 64), nil
	case string:
		return typed, nil
	}
	return "", fmt.Errorf("canon: cannot format %T", value)
}

func formatFloat(value float64, bitSize int) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "+Inf"
	case math.IsInf(value, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(value, 'g', -1, bitSize)
}

// FormatLiterals renders every element of a slice value. It accepts the
// slice types returned by ParseLiterals plus []uint8.
func FormatLiterals(values any) ([]string, error) {
	switch typed := values.(type) {
	case []int8:
		return formatEach(typed)
	case []uint8:
		return formatEach(typed)
	case []uint16:
		return formatEach(typed)
	case []int16:
		return formatEach(typed)
	case []int32:
		return formatEach(typed)
	case []int64:
		return formatEach(typed)
	case []float32:
		return formatEach(typed)
	case []float64:
		return formatEach(typed)
	case []string:
		return append([]string(nil), typed...), nil
	}
	return nil, fmt.Errorf("canon: cannot format %T", values)
}

func formatEach[T any](values []T) ([]string, error) {
	texts := make([]string, len(values))
	for index, value := range values {
		text, err := FormatLiteral(value)
		if err != nil {
			return nil, err
		}
		texts[index] = text
	}
	return texts, nil
}
