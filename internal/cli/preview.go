package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-jobwizard/pkg/renderers/summary"
	"github.com/goliatone/go-jobwizard/pkg/step"
)

func newPreviewCmd(root *rootOptions) *cobra.Command {
	var (
		format   string
		category string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the derived step view",
		Long: `Build the category and template step from the snapshot and print it.
The view holds the field states, the provider-grouped template options and
the access/error notices.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := root.loadCatalog()
			if err != nil {
				return err
			}

			sel := catalog.Selection
			if cmd.Flags().Changed("category") {
				session := step.NewSession(sel, step.WithLogger(root.logger))
				step.New(catalog.Input(sel), session).OnSelectCategory(category)
				sel = session.Selection()
			}
			view := step.Build(catalog.Input(sel))

			switch format {
			case "json":
				payload, err := json.MarshalIndent(view, "", "  ")
				if err != nil {
					return fmt.Errorf("encode view: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(payload))
				return err
			case "text":
				return summary.New().RenderTo(cmd.OutOrStdout(), view)
			default:
				return fmt.Errorf("unknown format %q (want json or text)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or json")
	cmd.Flags().StringVar(&category, "category", "", "Select this category before building the view")
	return cmd
}
