// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

// Hashgen is the command-line front end to the typed-value digest
// library. It provides subcommands for digesting literals and secrets
// (hash), printing canonical encodings (encode), listing algorithms
// (algorithms), and producing and checking known-answer vector files
// (vectors).
package main
