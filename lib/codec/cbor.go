// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

var (
	encMode  cbor.EncMode
	decMode  cbor.DecMode
	diagMode cbor.DiagMode
)

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	if encMode, err = encOptions.EncMode(); err != nil {
		panic(fmt.Sprintf("codec: building encode mode: %v", err))
	}

	decOptions := cbor.DecOptions{
		DefaultMapType:    reflect.TypeOf(map[string]any(nil)),
		TextUnmarshaler:   cbor.TextUnmarshalerTextString,
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}
	if decMode, err = decOptions.DecMode(); err != nil {
		panic(fmt.Sprintf("codec: building decode mode: %v", err))
	}

	diagOptions := cbor.DiagOptions{ByteStringEncoding: cbor.ByteStringBase16Encoding}
	if diagMode, err = diagOptions.DiagMode(); err != nil {
		panic(fmt.Sprintf("codec: building diagnostic mode: %v", err))
	}
}

// Marshal encodes v with Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes data into v. Struct targets reject map keys that
// name no field, and any map with a repeated key is an error.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// Diagnose renders data in CBOR diagnostic notation (RFC 8949 §8), byte
// strings as h'..' hex.
func Diagnose(data []byte) (string, error) {
	return diagMode.Diagnose(data)
}
