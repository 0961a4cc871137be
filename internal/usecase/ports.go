package usecase

import (
	"context"

	"github.com/regup-org/regup/internal/domain/models"
)

// RecordStore provides access to deployment record files on disk.
type RecordStore interface {
	// ListRecords returns the record file paths for a version. Fails with
	// domain.ErrVersionNotFound or domain.ErrNoRecordsFound.
	ListRecords(ctx context.Context, version string) ([]string, error)

	// LoadRecord reads and parses one record. A parse failure surfaces as
	// *domain.MalformedRecordError.
	LoadRecord(ctx context.Context, path string) (*models.Record, error)

	// SaveRecord overwrites a record file in place.
	SaveRecord(ctx context.Context, path string, rec *models.Record) error

	// ListVersions returns every version with an asset directory.
	ListVersions(ctx context.Context) ([]string, error)
}

// ChainResolver maps chain identifiers to human-readable network names.
type ChainResolver interface {
	// Name returns the network name for a chain ID, or "" when unknown.
	Name(ctx context.Context, chainID string) string
}
