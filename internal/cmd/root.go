package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/josegonzalez/romname/pkg/romname"
)

// Version is set at build time with -ldflags "-X .../internal/cmd.Version=...".
var Version = "dev"

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	workers     int
	cache       string
	foldAccents bool
	mapFile     string
	verbose     bool
}

// newRootCmd builds the command tree. Flag defaults come from the environment,
// so loadEnv must run first.
func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "romname",
		Short: "Parse and sort No-Intro ROM filenames",
		Long: `romname parses ROM filenames that follow the No-Intro naming convention
into a title plus region, language, version and dump status, and sorts
collections in natural order so "Mega Man 2" comes before "Mega Man 10".

Names are read from the arguments, or one per line from stdin.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().IntVarP(&opts.workers, "workers", "w", envInt("ROMNAME_WORKERS", runtime.NumCPU()), "Number of parse workers")
	rootCmd.PersistentFlags().StringVar(&opts.cache, "cache", envString("ROMNAME_CACHE", romname.CacheMemory), "Parse cache backend: memory, gocache, or none")
	rootCmd.PersistentFlags().BoolVar(&opts.foldAccents, "fold-accents", false, "Sort on accent-folded display names")
	rootCmd.PersistentFlags().StringVar(&opts.mapFile, "map", envString("ROMNAME_MAP", ""), "Tab-delimited map.txt of display name aliases")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newParseCmd(opts),
		newSortCmd(opts),
		newFindCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute loads the environment and runs the root command.
// This is called by main.main().
func Execute() {
	loadEnv()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newLibrary builds a Library from the global flags, logging to the
// command's stderr.
func (o *globalOptions) newLibrary(cmd *cobra.Command) (*romname.Library, error) {
	logger := newLogger(cmd.ErrOrStderr(), logLevel(o.verbose, os.Getenv("ROMNAME_LOG_LEVEL")))
	defaults := romname.DefaultCacheConfig()

	libOpts := []romname.Option{
		romname.WithWorkers(o.workers),
		romname.WithCache(o.cache, defaults.TTL, defaults.MaxSize),
		romname.WithFoldAccents(o.foldAccents),
		romname.WithLogger(logger.With("component", "library")),
	}

	if o.mapFile != "" {
		aliases, err := romname.LoadAliases(o.mapFile)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded alias map", "path", o.mapFile, "aliases", len(aliases))
		libOpts = append(libOpts, romname.WithAliases(aliases))
	}

	return romname.NewLibrary(libOpts...)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "romname %s\n", Version)
		},
	}
}
