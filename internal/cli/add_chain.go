package cli

import (
	"github.com/spf13/cobra"

	"github.com/regup-org/regup/internal/cli/render"
	"github.com/regup-org/regup/internal/usecase"
)

// NewAddChainCmd creates the add-chain command
func NewAddChainCmd() *cobra.Command {
	var (
		targetVersion string
		chainID       string
		variant       string
	)

	cmd := &cobra.Command{
		Use:   "add-chain",
		Short: "Add a chain to every deployment record of a version",
		Long: `Add a chain to every deployment record of one released version.

Each record's networkAddresses mapping gains the chain under the given
deployment variant, keeping keys in ascending numeric order. A chain that is
already recorded with the variant is left untouched; a chain recorded with a
different variant has the new one merged into its variant set. Records that
need no change are not rewritten.`,
		Example: `  # Record chain 988 as a canonical deployment across v1.4.1
  regup add-chain --target-version 1.4.1 --chain-id 988 --variant canonical

  # Merge an eip155 deployment into chains already marked canonical
  regup add-chain -t 1.3.0 -c 10 --variant eip155`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.AddChain.Run(cmd.Context(), usecase.AddChainParams{
				Version: targetVersion,
				ChainID: chainID,
				Variant: variant,
			})
			if err != nil {
				return err
			}

			renderer := render.NewAddChainRenderer(cmd.OutOrStdout(), app.Config.Debug)
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVarP(&targetVersion, "target-version", "t", "", "Version whose records to update (without the v prefix)")
	cmd.Flags().StringVarP(&chainID, "chain-id", "c", "", "Decimal chain identifier to add")
	cmd.Flags().StringVar(&variant, "variant", "", "Deployment variant (canonical, eip155, zksync)")
	_ = cmd.MarkFlagRequired("target-version")
	_ = cmd.MarkFlagRequired("chain-id")
	_ = cmd.MarkFlagRequired("variant")

	return cmd
}
