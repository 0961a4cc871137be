package cli

import (
	"github.com/spf13/cobra"

	"github.com/regup-org/regup/internal/cli/render"
	"github.com/regup-org/regup/internal/usecase"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var targetVersion string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the deployment records of a version",
		Example: `  # List all records shipped with v1.4.1
  regup list --target-version 1.4.1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListRecords.Run(cmd.Context(), usecase.ListRecordsParams{
				Version: targetVersion,
			})
			if err != nil {
				return err
			}

			renderer := render.NewRecordsRenderer(cmd.OutOrStdout())
			return renderer.RenderList(result)
		},
	}

	cmd.Flags().StringVarP(&targetVersion, "target-version", "t", "", "Version whose records to list (without the v prefix)")
	_ = cmd.MarkFlagRequired("target-version")

	return cmd
}
