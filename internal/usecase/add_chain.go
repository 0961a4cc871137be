package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/regup-org/regup/internal/domain/models"
)

// AddChain inserts a chain into every deployment record of one version.
type AddChain struct {
	store RecordStore
	log   *slog.Logger
}

// NewAddChain creates the add-chain use case.
func NewAddChain(store RecordStore, log *slog.Logger) *AddChain {
	return &AddChain{
		store: store,
		log:   log,
	}
}

// AddChainParams contains the three mandatory inputs of the operation.
type AddChainParams struct {
	// Version selects the asset directory, without the "v" prefix
	Version string
	// ChainID is the decimal chain identifier to insert
	ChainID string
	// Variant is the deployment variant tag to record for the chain
	Variant string
}

// FileStatus reports what happened to one record file.
type FileStatus struct {
	Path    string
	Name    string
	Updated bool
}

// AddChainResult summarizes one batch run.
type AddChainResult struct {
	Version string
	ChainID string
	Variant models.Variant
	Files   []FileStatus
	// Updated counts files actually rewritten; skipped no-ops are excluded
	Updated int
	Skipped int
}

// Run validates the inputs once, then applies the chain insertion to each
// record of the version in turn. Files are independent: a record that needs
// no change is skipped without a write, while the first unrecoverable error
// aborts the remaining batch (already-written files stay written).
func (uc *AddChain) Run(ctx context.Context, params AddChainParams) (*AddChainResult, error) {
	variant, err := models.ParseVariant(params.Variant)
	if err != nil {
		return nil, err
	}
	if _, err := models.ParseChainID(params.ChainID); err != nil {
		return nil, err
	}

	paths, err := uc.store.ListRecords(ctx, params.Version)
	if err != nil {
		return nil, err
	}

	result := &AddChainResult{
		Version: params.Version,
		ChainID: params.ChainID,
		Variant: variant,
	}

	for _, path := range paths {
		rec, err := uc.store.LoadRecord(ctx, path)
		if err != nil {
			return nil, err
		}

		na, err := rec.NetworkAddresses()
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", path, err)
		}

		// Fast path: chain already recorded as a scalar equal to the target
		// variant. The set-contains case is left to AddChain, which no-ops
		// on it as well.
		if entry, ok := na.Get(params.ChainID); ok {
			if tag, single := entry.Single(); single && tag == variant {
				uc.log.Debug("record already up to date", "record", rec.Name)
				result.Files = append(result.Files, FileStatus{Path: path, Name: rec.Name})
				result.Skipped++
				continue
			}
		}

		updated, changed, err := na.AddChain(params.ChainID, variant)
		if err != nil {
			return nil, err
		}
		if !changed {
			uc.log.Debug("record already up to date", "record", rec.Name)
			result.Files = append(result.Files, FileStatus{Path: path, Name: rec.Name})
			result.Skipped++
			continue
		}

		if err := rec.SetNetworkAddresses(updated); err != nil {
			return nil, fmt.Errorf("record %s: %w", path, err)
		}
		if err := uc.store.SaveRecord(ctx, path, rec); err != nil {
			return nil, err
		}

		uc.log.Debug("record updated", "record", rec.Name, "chain", params.ChainID)
		result.Files = append(result.Files, FileStatus{Path: path, Name: rec.Name, Updated: true})
		result.Updated++
	}

	return result, nil
}
