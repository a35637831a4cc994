package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vertexcover/cover"
	"github.com/katalvlaran/vertexcover/internal/puzzle"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		format string
		chosen []int
		solve  bool
	)
	cmd := &cobra.Command{
		Use:   "generate <puzzle>",
		Short: "Write a built-in puzzle as a document ready for `vcover evaluate`",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := puzzle.Lookup(args[0])
			if err != nil {
				return err
			}
			if solve {
				best, ok := cover.MinimumCover(g, a.cfg.SearchLimit)
				if !ok {
					return fmt.Errorf("generate %s: n=%d exceeds search limit %d", args[0], g.N, a.cfg.SearchLimit)
				}
				chosen = best.Cover
			}
			doc := puzzle.FromGraph(g, chosen)

			switch format {
			case "yaml":
				return puzzle.Encode(cmd.OutOrStdout(), doc)
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(doc)
			default:
				return fmt.Errorf("--format %q: must be yaml or json", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml or json")
	cmd.Flags().IntSliceVar(&chosen, "chosen", nil, "placement to embed in the document")
	cmd.Flags().BoolVar(&solve, "solve", false, "embed a minimum cover as the placement")
	return cmd
}
