package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/regup-org/regup/internal/domain"
	"github.com/regup-org/regup/internal/domain/models"
)

// CheckRecords verifies the registry invariants: every record parses, chain
// keys are numeric and strictly ascending, and variant entries carry only
// known, distinct tags. Unlike the batch updater it collects violations
// instead of aborting on the first one.
type CheckRecords struct {
	store RecordStore
}

func NewCheckRecords(store RecordStore) *CheckRecords {
	return &CheckRecords{store: store}
}

type CheckRecordsParams struct {
	// Version limits the check to one version; empty checks all of them
	Version string
}

// Violation is one invariant breach in one record.
type Violation struct {
	Version string
	Record  string
	Message string
}

type CheckRecordsResult struct {
	Checked    int
	Violations []Violation
}

func (uc *CheckRecords) Run(ctx context.Context, params CheckRecordsParams) (*CheckRecordsResult, error) {
	versions := []string{params.Version}
	if params.Version == "" {
		var err error
		versions, err = uc.store.ListVersions(ctx)
		if err != nil {
			return nil, err
		}
	}

	result := &CheckRecordsResult{}
	for _, version := range versions {
		paths, err := uc.store.ListRecords(ctx, version)
		if err != nil {
			if params.Version == "" && errors.Is(err, domain.ErrNoRecordsFound) {
				continue
			}
			return nil, err
		}

		for _, path := range paths {
			rec, err := uc.store.LoadRecord(ctx, path)
			if err != nil {
				var malformed *domain.MalformedRecordError
				if errors.As(err, &malformed) {
					result.Checked++
					result.Violations = append(result.Violations, Violation{
						Version: version,
						Record:  path,
						Message: fmt.Sprintf("does not parse: %v", malformed.Err),
					})
					continue
				}
				return nil, err
			}

			result.Checked++
			for _, v := range uc.checkRecord(rec) {
				result.Violations = append(result.Violations, Violation{
					Version: version,
					Record:  rec.Name,
					Message: v,
				})
			}
		}
	}

	return result, nil
}

func (uc *CheckRecords) checkRecord(rec *models.Record) []string {
	na, err := rec.NetworkAddresses()
	if err != nil {
		return []string{fmt.Sprintf("networkAddresses does not parse: %v", err)}
	}

	var violations []string
	var prev uint64
	var prevOK bool
	for _, entry := range na {
		id, err := models.ParseChainID(entry.ChainID)
		if err != nil {
			violations = append(violations, fmt.Sprintf("non-numeric chain key %q", entry.ChainID))
			prevOK = false
			continue
		}
		if prevOK && id <= prev {
			violations = append(violations, fmt.Sprintf("chain key %s out of ascending order", entry.ChainID))
		}
		prev, prevOK = id, true

		tags := entry.Entry.Tags()
		if len(tags) == 0 {
			violations = append(violations, fmt.Sprintf("chain %s has an empty variant set", entry.ChainID))
		}
		for _, dup := range lo.FindDuplicates(tags) {
			violations = append(violations, fmt.Sprintf("chain %s repeats variant %q", entry.ChainID, dup))
		}
		for _, tag := range lo.Uniq(tags) {
			if _, err := models.ParseVariant(string(tag)); err != nil {
				violations = append(violations, fmt.Sprintf("chain %s has unknown variant %q", entry.ChainID, tag))
			}
		}
	}

	return violations
}
