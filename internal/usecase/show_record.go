package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/regup-org/regup/internal/domain"
	"github.com/regup-org/regup/internal/domain/models"
)

// ShowRecord displays one record's full network table. The record reference
// is resolved by exact file-stem match first, then fuzzy match.
type ShowRecord struct {
	store    RecordStore
	resolver ChainResolver
}

func NewShowRecord(store RecordStore, resolver ChainResolver) *ShowRecord {
	return &ShowRecord{
		store:    store,
		resolver: resolver,
	}
}

type ShowRecordParams struct {
	Version   string
	Reference string
}

// NetworkRow is one chain line of the record's network table.
type NetworkRow struct {
	ChainID string
	// ChainName is the resolved network name, "" when unknown
	ChainName string
	Variants  []models.Variant
}

type ShowRecordResult struct {
	Version  string
	Name     string
	Networks []NetworkRow
}

func (uc *ShowRecord) Run(ctx context.Context, params ShowRecordParams) (*ShowRecordResult, error) {
	paths, err := uc.store.ListRecords(ctx, params.Version)
	if err != nil {
		return nil, err
	}

	path, err := resolveRecordPath(paths, params.Reference)
	if err != nil {
		return nil, err
	}

	rec, err := uc.store.LoadRecord(ctx, path)
	if err != nil {
		return nil, err
	}
	na, err := rec.NetworkAddresses()
	if err != nil {
		return nil, err
	}

	result := &ShowRecordResult{Version: params.Version, Name: rec.Name}
	for _, entry := range na {
		result.Networks = append(result.Networks, NetworkRow{
			ChainID:   entry.ChainID,
			ChainName: uc.resolver.Name(ctx, entry.ChainID),
			Variants:  entry.Entry.Tags(),
		})
	}

	return result, nil
}

// resolveRecordPath matches a record reference against file stems: an exact
// match wins, a unique fuzzy match is accepted, anything else errors.
func resolveRecordPath(paths []string, reference string) (string, error) {
	names := make([]string, len(paths))
	for i, path := range paths {
		names[i] = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	for i, name := range names {
		if name == reference {
			return paths[i], nil
		}
	}

	matches := fuzzy.Find(reference, names)
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %q", domain.ErrRecordNotFound, reference)
	case 1:
		return paths[matches[0].Index], nil
	default:
		candidates := make([]string, len(matches))
		for i, m := range matches {
			candidates[i] = m.Str
		}
		return "", domain.AmbiguousRecordErr{Query: reference, Matches: candidates}
	}
}
