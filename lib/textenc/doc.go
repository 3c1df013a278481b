// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

// Package textenc resolves named text encodings ("UTF-8", "US-ASCII",
// "ISO-8859-1", ...) and encodes strings into byte buffers that the
// caller owns and must wipe.
//
// Names are resolved through the IANA character set registry as indexed
// by golang.org/x/text/encoding/ianaindex, so every alias IANA lists is
// accepted case-insensitively. A name the registry does not know, or
// knows but has no encoder for, is [ErrUnsupportedEncoding]. A blank
// name is [ErrEmptyName]; there is no default encoding.
//
// Each character the target encoding cannot represent, and each
// invalid UTF-8 byte, is written as "?" in that encoding, so
// "héllo" in US-ASCII encodes as "h?llo". Encoding a well-formed name
// therefore never fails on the text itself.
//
// Every intermediate buffer that held encoded text is zeroed before it
// is abandoned, including buffers discarded while growing the output.
package textenc
