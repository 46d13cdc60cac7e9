package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josegonzalez/romname/pkg/romname"
)

func newFindCmd(opts *globalOptions) *cobra.Command {
	var (
		all   bool
		limit int
	)

	cmd := &cobra.Command{
		Use:   "find QUERY [names...]",
		Short: "Fuzzy-find a title among filenames",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := args[0]
			names, err := readNames(args[1:], cmd.InOrStdin())
			if err != nil {
				return err
			}

			lib, err := opts.newLibrary(cmd)
			if err != nil {
				return err
			}
			defer lib.Close()

			if err := lib.Add(cmd.Context(), names...); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !all {
				entry, score, err := lib.Find(query)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(out, "%s\t%.3f\n", entry.Filename, score)
				return err
			}

			matches := lib.Search(query, limit)
			if len(matches) == 0 {
				return &romname.EntryNotFoundError{Query: query}
			}
			rows := make([][]string, len(matches))
			for i, m := range matches {
				rows[i] = []string{fmt.Sprintf("%.3f", m.Score), m.Confidence, m.Entry.Filename}
			}
			return renderTable(out, []string{"SCORE", "CONFIDENCE", "FILENAME"}, rows)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "List every match above the threshold")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum matches listed with --all (0 = no limit)")
	return cmd
}
