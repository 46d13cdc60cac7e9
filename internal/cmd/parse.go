package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josegonzalez/romname/pkg/romname"
)

func newParseCmd(opts *globalOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse [names...]",
		Short: "Parse filenames into title and tags",
		Example: `  romname parse "Legend of Zelda, The (USA) (Rev 1).nes"
  ls roms/ | romname parse --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := readNames(args, cmd.InOrStdin())
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

			// Input order, duplicates included
			entries := make([]romname.Entry, 0, len(names))
			for _, name := range names {
				entry, err := lib.Get(name)
				if err != nil {
					return err
				}
				entries = append(entries, entry)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(entries); err != nil {
					return fmt.Errorf("encoding entries: %w", err)
				}
				return nil
			}

			rows := make([][]string, len(entries))
			for i, e := range entries {
				p := e.Parsed
				rows[i] = []string{p.DisplayName, p.Region, p.Language, p.Version, p.DevStatus, p.Status, e.Platform.String()}
			}
			return renderTable(cmd.OutOrStdout(),
				[]string{"TITLE", "REGION", "LANGUAGE", "VERSION", "DEV", "STATUS", "PLATFORM"}, rows)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print entries as JSON")
	return cmd
}
