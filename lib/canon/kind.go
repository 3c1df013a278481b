// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package canon

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind identifies the scalar type of a value being hashed.
type Kind uint8

const (
	// Invalid is the zero Kind. No value has it.
	Invalid Kind = iota
	Byte
	Char
	Short
	Int
	Long
	Float
	Double
	String
)

// Kinds lists every valid Kind in declaration order.
var Kinds = []Kind{Byte, Char, Short, Int, Long, Float, Double, String}

var kindNames = [...]string{
	Invalid: "invalid",
	Byte:    "byte",
	Char:    "char",
	Short:   "short",
	Int:     "int",
	Long:    "long",
	Float:   "float",
	Double:  "double",
	String:  "string",
}

var kindWidths = [...]int{
	Byte:   1,
	Char:   2,
	Short:  2,
	Int:    4,
	Long:   8,
	Float:  4,
	Double: 8,
}

// String returns the lowercase kind name ("int", "double", ...).
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Width returns the canonical encoded width of one value in bytes, or 0
// for String and Invalid, whose width is not fixed.
func (k Kind) Width() int {
	if int(k) < len(kindWidths) {
		return kindWidths[k]
	}
	return 0
}

// Fixed reports whether every value of this kind encodes to Width bytes.
func (k Kind) Fixed() bool {
	return k.Width() > 0
}

// MarshalText implements encoding.TextMarshaler so kinds serialize by
// name in config and vector files.
func (k Kind) MarshalText() ([]byte, error) {
	if k == Invalid || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("canon: cannot marshal %v", k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind resolves a kind name. Matching is case-insensitive and
// accepts the long spellings "character" and "integer".
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "byte":
		return Byte, nil
	case "char", "character":
		return Char, nil
	case "short":
		return Short, nil
	case "int", "integer":
		return Int, nil
	case "long":
		return Long, nil
	case "float":
		return Float, nil
	case "double":
		return Double, nil
	case "string":
		return String, nil
	}
	return Invalid, fmt.Errorf("canon: unknown kind %q", name)
}

// Shape distinguishes a single value from a homogeneous array.
type Shape uint8

const (
	ShapeScalar Shape = iota
	ShapeArray
)

// String returns "scalar" or "array".
func (s Shape) String() string {
	if s == ShapeArray {
		return "array"
	}
	return "scalar"
}

// MarshalText implements encoding.TextMarshaler.
func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shape) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "scalar":
		*s = ShapeScalar
	case "array":
		*s = ShapeArray
	default:
		return fmt.Errorf("canon: unknown shape %q", text)
	}
	return nil
}

// Scalar is the set of fixed-width Go types with a canonical encoding.
// uint16 is a Char (UTF-16 code unit); int8 and uint8 are both Byte.
type Scalar interface {
	~int8 | ~uint8 | ~uint16 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// KindOf returns the Kind that values of type T encode as.
func KindOf[T Scalar]() Kind {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int8, reflect.Uint8:
		return Byte
	case reflect.Uint16:
		return Char
	case reflect.Int16:
		return Short
	case reflect.Int32:
		return Int
	case reflect.Int64:
		return Long
	case reflect.Float32:
		return Float
	case reflect.Float64:
		return Double
	}
	// Unreachable: the Scalar constraint admits no other kinds.
	return Invalid
}

// KindOfValue classifies a dynamically typed value: one of the Scalar
// base types, string, or a slice of either. Named types are not
// accepted here; use the generic functions for those.
func KindOfValue(value any) (Kind, Shape, error) {
	switch value.(type) {
	case int8, uint8:
		return Byte, ShapeScalar, nil
	case uint16:
		return Char, ShapeScalar, nil
	case int16:
		return Short, ShapeScalar, nil
	case int32:
		return Int, ShapeScalar, nil
	case int64:
		return Long, ShapeScalar, nil
	case float32:
		return Float, ShapeScalar, nil
	case float64:
		return Double, ShapeScalar, nil
	case string:
		return String, ShapeScalar, nil
	case []int8, []uint8:
		return Byte, ShapeArray, nil
	case []uint16:
		return Char, ShapeArray, nil
	case []int16:
		return Short, ShapeArray, nil
	case []int32:
		return Int, ShapeArray, nil
	case []int64:
		return Long, ShapeArray, nil
	case []float32:
		return Float, ShapeArray, nil
	case []float64:
		return Double, ShapeArray, nil
	case []string:
		return String, ShapeArray, nil
	}
	return Invalid, ShapeScalar, fmt.Errorf("canon: unsupported value type %T", value)
}
