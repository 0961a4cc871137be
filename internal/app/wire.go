//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/regup-org/regup/internal/adapters/chains"
	"github.com/regup-org/regup/internal/adapters/fs"
	"github.com/regup-org/regup/internal/config"
	"github.com/regup-org/regup/internal/logging"
	"github.com/regup-org/regup/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Config and logging
		config.Provider,
		logging.NewLogger,

		// Adapters
		fs.NewRecordStore,
		wire.Bind(new(usecase.RecordStore), new(*fs.RecordStore)),
		chains.NewResolver,
		wire.Bind(new(usecase.ChainResolver), new(*chains.Resolver)),

		// Use cases
		usecase.NewAddChain,
		usecase.NewListRecords,
		usecase.NewShowRecord,
		usecase.NewCheckRecords,
		usecase.NewListVersions,

		// App
		NewApp,
	)
	return nil, nil
}
