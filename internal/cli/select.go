package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-jobwizard/pkg/renderers/tui"
	"github.com/goliatone/go-jobwizard/pkg/step"
)

// promptDriver is swapped in tests.
var promptDriver tui.PromptDriver

func newSelectCmd(root *rootOptions) *cobra.Command {
	var (
		format   string
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Choose a category and template interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := root.loadCatalog()
			if err != nil {
				return err
			}

			outputFormat := tui.OutputFormat(format)
			switch outputFormat {
			case tui.OutputFormatJSON, tui.OutputFormatPrettyText:
			default:
				return fmt.Errorf("unknown format %q (want json or pretty)", format)
			}

			session := step.NewSession(catalog.Selection, step.WithLogger(root.logger))
			renderer := tui.New(
				tui.WithPromptDriver(promptDriver),
				tui.WithOutputFormat(outputFormat),
				tui.WithLogger(root.logger),
				tui.WithPageSize(pageSize),
			)

			out, err := renderer.Run(cmd.Context(), catalog, session)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(tui.OutputFormatJSON), "Output format: json or pretty")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Options shown per page (0 = driver default)")
	return cmd
}
