package cli

import (
	"github.com/spf13/cobra"

	"github.com/regup-org/regup/internal/cli/render"
)

// NewVersionsCmd creates the versions command
func NewVersionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List the versions tracked in the registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListVersions.Run(cmd.Context())
			if err != nil {
				return err
			}

			renderer := render.NewVersionsRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}
}
