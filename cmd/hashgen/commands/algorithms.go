// Copyright 2026 The Hashgen Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/hashgen/hashgen/cmd/hashgen/cli"
	"github.com/hashgen/hashgen/lib/digest"
)

type algorithmsParams struct {
	cli.JSONOutput
}

// algorithmEntry is one row of "hashgen algorithms".
type algorithmEntry struct {
	Identifier string `json:"identifier"`
	Size       int    `json:"size"`
	Legacy     bool   `json:"legacy"`
}

func algorithmsCommand(environment Environment) *cli.Command {
	var params algorithmsParams

	return &cli.Command{
		Name:    "algorithms",
		Summary: "List supported digest algorithms",
		Description: `List every digest algorithm with its identifier and digest size in
bytes. Legacy algorithms (MD2, MD5, SHA-1) are supported for
compatibility but are not collision resistant.`,
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			entries := make([]algorithmEntry, 0, len(digest.Algorithms))
			for _, algorithm := range digest.Algorithms {
				entries = append(entries, algorithmEntry{
					Identifier: algorithm.String(),
					Size:       algorithm.Size(),
					Legacy:     algorithm.Legacy(),
				})
			}

			stdout := environment.stdout()
			if done, err := params.EmitJSON(stdout, entries); done {
				return err
			}

			writer := tabwriter.NewWriter(stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(writer, "ALGORITHM\tBYTES\tHEX DIGITS\tNOTE")
			for _, entry := range entries {
				note := ""
				if entry.Legacy {
					note = "legacy"
				}
				fmt.Fprintf(writer, "%s\t%d\t%d\t%s\n", entry.Identifier, entry.Size, 2*entry.Size, note)
			}
			return writer.Flush()
		},
	}
}
