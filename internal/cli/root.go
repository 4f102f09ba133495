// Package cli provides the jobwizard command-line interface.
package cli

import (
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-jobwizard/internal/logging"
	"github.com/goliatone/go-jobwizard/internal/snapshot"
)

// Version is overridden at build time.
var Version = "v0.1.0-dev"

type rootOptions struct {
	dataPath string
	verbose  bool
	jsonLogs bool

	logger zerolog.Logger
}

// NewRootCmd creates the root command. Logs go to stderr so stdout carries
// only command output.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "jobwizard",
		Short: "Pick a job category and template from a recorded data snapshot",
		Long: `jobwizard runs the category and template step of the job wizard against a
snapshot of the data layer (categories, templates per category, fetch errors
and missing permissions) stored as JSON or YAML.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = logging.New(logging.Options{
				Out:     stderr,
				Verbose: opts.verbose,
				JSON:    opts.jsonLogs,
			})
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVarP(&opts.dataPath, "data", "d", "", "Snapshot file (JSON or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output (shows debug messages)")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonLogs, "log-json", false, "Emit logs as JSON lines")

	rootCmd.AddCommand(newPreviewCmd(opts))
	rootCmd.AddCommand(newSelectCmd(opts))

	return rootCmd
}

func (o *rootOptions) loadCatalog() (*snapshot.Catalog, error) {
	if o.dataPath == "" {
		return nil, errors.New("missing --data snapshot path")
	}
	catalog, err := snapshot.Load(o.dataPath)
	if err != nil {
		return nil, err
	}
	o.logger.Debug().
		Str("source", catalog.Source).
		Int("categories", len(catalog.Categories)).
		Bool("templates_loading", catalog.TemplatesLoading).
		Msg("snapshot loaded")
	return catalog, nil
}
