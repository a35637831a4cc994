package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vertexcover/internal/puzzle"
)

func newPuzzlesCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "puzzles",
		Short: "List the built-in puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := puzzle.Catalog()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tVERTICES\tEDGES\tDESCRIPTION")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", e.Name, e.Vertices, e.Edges, e.Description)
			}
			return w.Flush()
		},
	}
}
