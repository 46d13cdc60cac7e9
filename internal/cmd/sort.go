package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josegonzalez/romname/pkg/platform"
	"github.com/josegonzalez/romname/pkg/romname"
)

func newSortCmd(opts *globalOptions) *cobra.Command {
	var (
		display      bool
		platformSlug string
	)

	cmd := &cobra.Command{
		Use:   "sort [names...]",
		Short: "Print filenames in natural order",
		Long: `Sort orders names by display title: leading articles are ignored and
runs of digits compare by value, so "The Legend of Zelda" sorts under L
and "Mega Man 2" before "Mega Man 10".`,
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

			var entries []romname.Entry
			if platformSlug != "" {
				slug := platform.Slug(platformSlug)
				if !slug.IsValid() {
					return fmt.Errorf("unknown platform %q", platformSlug)
				}
				entries = lib.EntriesByPlatform(slug)
			} else {
				entries = lib.Entries()
			}

			out := cmd.OutOrStdout()
			for _, e := range entries {
				line := e.Filename
				if display {
					line = e.Name()
				}
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&display, "display", "d", false, "Print display names (or aliases) instead of filenames")
	cmd.Flags().StringVarP(&platformSlug, "platform", "p", "", "Only print entries of this platform (e.g. nes, snes, gb)")
	return cmd
}
