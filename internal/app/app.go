package app

import (
	"log/slog"

	"github.com/regup-org/regup/internal/config"
	"github.com/regup-org/regup/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	AddChain     *usecase.AddChain
	ListRecords  *usecase.ListRecords
	ShowRecord   *usecase.ShowRecord
	CheckRecords *usecase.CheckRecords
	ListVersions *usecase.ListVersions
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	addChain *usecase.AddChain,
	listRecords *usecase.ListRecords,
	showRecord *usecase.ShowRecord,
	checkRecords *usecase.CheckRecords,
	listVersions *usecase.ListVersions,
) (*App, error) {
	return &App{
		Config:       cfg,
		Log:          log,
		AddChain:     addChain,
		ListRecords:  listRecords,
		ShowRecord:   showRecord,
		CheckRecords: checkRecords,
		ListVersions: listVersions,
	}, nil
}
