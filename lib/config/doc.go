// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the hashgen command's configuration file.
//
// Configuration comes from a single file named by the --config flag
// (via [LoadFile]) or the HASHGEN_CONFIG environment variable (via
// [Load]). There is no search path and no ~/.config discovery; with
// neither set, [Resolve] returns [Default]. Command-line flags override
// file values after loading.
//
// Files ending in .yaml or .yml are YAML. Files ending in .json or
// .jsonc are JSON with // and /* */ comments and trailing commas
// allowed. Unknown keys are errors in both formats.
//
// Key exports:
//
//   - [Config] -- algorithm, text encoding, logging, memory and
//     vector-tool settings
//   - [Default] -- the built-in values
//   - [Resolve], [Load] and [LoadFile] -- the loading entry points
//   - [Config.Validate] -- reports every invalid field at once
package config
