package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/regup-org/regup/internal/app"
	"github.com/regup-org/regup/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "regup",
		Short: "Registry maintainer for per-chain contract deployment assets",
		Long: `Regup maintains a registry of per-chain contract deployment addresses
stored as JSON asset files, one directory per released version. Its core
operation inserts a chain into every deployment record of a version while
keeping the networkAddresses keys in ascending numeric order.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			// .env is optional
			_ = godotenv.Load(filepath.Join(projectRoot, ".env"))

			v := config.SetupViper(projectRoot)
			bindGlobalFlags(v, cmd)

			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().String("assets-dir", "", "Assets root directory (defaults to <project root>/assets)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "inspection",
		Title: "Inspection Commands",
	})

	addChainCmd := NewAddChainCmd()
	addChainCmd.GroupID = "main"
	rootCmd.AddCommand(addChainCmd)

	listCmd := NewListCmd()
	listCmd.GroupID = "inspection"
	rootCmd.AddCommand(listCmd)

	showCmd := NewShowCmd()
	showCmd.GroupID = "inspection"
	rootCmd.AddCommand(showCmd)

	checkCmd := NewCheckCmd()
	checkCmd.GroupID = "inspection"
	rootCmd.AddCommand(checkCmd)

	versionsCmd := NewVersionsCmd()
	versionsCmd.GroupID = "inspection"
	rootCmd.AddCommand(versionsCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// bindGlobalFlags binds changed global flags to viper
func bindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		switch f.Name {
		case "debug":
			v.Set("debug", f.Value.String())
		case "assets-dir":
			v.Set("assets_dir", f.Value.String())
		}
	})
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	a, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return a, nil
}
