package cli

import (
	"github.com/spf13/cobra"

	"github.com/regup-org/regup/internal/cli/render"
	"github.com/regup-org/regup/internal/usecase"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	var targetVersion string

	cmd := &cobra.Command{
		Use:   "show <record>",
		Short: "Show one record's network table",
		Long: `Show the full network table of one deployment record: every chain it is
deployed on, the network name when known, and the deployment variants.

The record reference matches the file name without extension; a close-enough
partial name is accepted when it matches a single record.`,
		Example: `  # Show the proxy factory record of v1.4.1
  regup show safe_proxy_factory --target-version 1.4.1

  # Partial names work when unambiguous
  regup show proxy -t 1.4.1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowRecord.Run(cmd.Context(), usecase.ShowRecordParams{
				Version:   targetVersion,
				Reference: args[0],
			})
			if err != nil {
				return err
			}

			renderer := render.NewRecordsRenderer(cmd.OutOrStdout())
			return renderer.RenderShow(result)
		},
	}

	cmd.Flags().StringVarP(&targetVersion, "target-version", "t", "", "Version the record belongs to (without the v prefix)")
	_ = cmd.MarkFlagRequired("target-version")

	return cmd
}
