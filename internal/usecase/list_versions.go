package usecase

import (
	"context"
	"errors"
	"sort"

	"github.com/Masterminds/semver/v3"

	"github.com/regup-org/regup/internal/domain"
)

// ListVersions lists every version directory under the assets root in
// ascending semantic-version order.
type ListVersions struct {
	store RecordStore
}

func NewListVersions(store RecordStore) *ListVersions {
	return &ListVersions{store: store}
}

// VersionInfo is one version line.
type VersionInfo struct {
	Version string
	Records int
}

type ListVersionsResult struct {
	Versions []VersionInfo
}

func (uc *ListVersions) Run(ctx context.Context) (*ListVersionsResult, error) {
	versions, err := uc.store.ListVersions(ctx)
	if err != nil {
		return nil, err
	}

	sortVersions(versions)

	result := &ListVersionsResult{}
	for _, version := range versions {
		paths, err := uc.store.ListRecords(ctx, version)
		if err != nil && !errors.Is(err, domain.ErrNoRecordsFound) {
			return nil, err
		}
		result.Versions = append(result.Versions, VersionInfo{
			Version: version,
			Records: len(paths),
		})
	}

	return result, nil
}

// sortVersions orders parseable versions semantically; anything that is not
// a semantic version sorts after them, lexically.
func sortVersions(versions []string) {
	sort.SliceStable(versions, func(i, j int) bool {
		a, aerr := semver.NewVersion(versions[i])
		b, berr := semver.NewVersion(versions[j])
		switch {
		case aerr == nil && berr == nil:
			return a.LessThan(b)
		case aerr == nil:
			return true
		case berr == nil:
			return false
		default:
			return versions[i] < versions[j]
		}
	})
}
