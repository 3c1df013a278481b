// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command framework for the hashgen binary.
//
// A [Command] is a node in a tree: either a group with Subcommands or a
// leaf with a Run function. [Command.Execute] dispatches on the first
// positional argument, parses flags with spf13/pflag, and calls Run
// with the remaining arguments. Unknown commands and flags produce an
// error with the closest known name by edit distance.
//
// Leaf commands declare their flags as a tagged parameter struct
// returned by Params; [FlagsFromParams] binds the struct fields to a
// flag set. Fields of TextUnmarshaler types parse on assignment:
//
//	type hashParams struct {
//	    Type  canon.Kind `json:"type"  flag:"type,t" desc:"value kind" default:"int"`
//	    Array bool       `json:"array" flag:"array"  desc:"hash all values as one array"`
//	}
//
// [ExitError] lets a command choose its exit code after printing its
// own output. [NewCommandLogger] builds the slog logger the binary
// hands to every Run.
package cli
