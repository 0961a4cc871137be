package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/regup-org/regup/internal/cli/render"
	"github.com/regup-org/regup/internal/usecase"
)

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	var targetVersion string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify registry invariants across deployment records",
		Long: `Verify that every deployment record parses, that networkAddresses keys
are numeric and strictly ascending, and that variant entries carry only
known, distinct tags. Without --target-version all versions are checked.`,
		Example: `  # Check the whole registry
  regup check

  # Check one version only
  regup check --target-version 1.4.1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.CheckRecords.Run(cmd.Context(), usecase.CheckRecordsParams{
				Version: targetVersion,
			})
			if err != nil {
				return err
			}

			renderer := render.NewCheckRenderer(cmd.OutOrStdout())
			if err := renderer.Render(result); err != nil {
				return err
			}
			if len(result.Violations) > 0 {
				return fmt.Errorf("%d invariant violation(s) found", len(result.Violations))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetVersion, "target-version", "t", "", "Limit the check to one version (without the v prefix)")

	return cmd
}
