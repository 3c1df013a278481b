// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"strings"
	"testing"

	"github.com/hashgen/hashgen/cmd/hashgen/cli"
	"github.com/hashgen/hashgen/cmd/hashgen/commands"
)

// TestCommandTreeDocumented walks the production command tree and
// checks that every command can be found from its parent's help
// listing and that every leaf's flags bind without panicking.
func TestCommandTreeDocumented(t *testing.T) {
	root := commands.Root(commands.Environment{})
	walkCommands(root, nil, func(command *cli.Command, path []string) {
		name := strings.Join(path, " ")
		if len(path) > 1 && command.Summary == "" {
			t.Errorf("%s: missing Summary", name)
		}
		if command.Run == nil && len(command.Subcommands) == 0 {
			t.Errorf("%s: neither Run nor Subcommands", name)
		}
		if command.Params != nil {
			cli.FlagsFromParams(command.Name, command.Params())
		}
	})
}

func walkCommands(command *cli.Command, path []string, visit func(*cli.Command, []string)) {
	current := make([]string, len(path)+1)
	copy(current, path)
	current[len(path)] = command.Name
	visit(command, current)
	for _, sub := range command.Subcommands {
		walkCommands(sub, current, visit)
	}
}
