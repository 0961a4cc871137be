package usecase

import "context"

// ListRecords lists the deployment records of one version with their chain
// coverage.
type ListRecords struct {
	store RecordStore
}

func NewListRecords(store RecordStore) *ListRecords {
	return &ListRecords{store: store}
}

type ListRecordsParams struct {
	Version string
}

// RecordSummary is one record's coverage line.
type RecordSummary struct {
	Name     string
	Networks int
	// First and Last are the lowest and highest chain IDs in stored order
	First string
	Last  string
}

type ListRecordsResult struct {
	Version string
	Records []RecordSummary
}

func (uc *ListRecords) Run(ctx context.Context, params ListRecordsParams) (*ListRecordsResult, error) {
	paths, err := uc.store.ListRecords(ctx, params.Version)
	if err != nil {
		return nil, err
	}

	result := &ListRecordsResult{Version: params.Version}
	for _, path := range paths {
		rec, err := uc.store.LoadRecord(ctx, path)
		if err != nil {
			return nil, err
		}
		na, err := rec.NetworkAddresses()
		if err != nil {
			return nil, err
		}

		summary := RecordSummary{Name: rec.Name, Networks: len(na)}
		if len(na) > 0 {
			summary.First = na[0].ChainID
			summary.Last = na[len(na)-1].ChainID
		}
		result.Records = append(result.Records, summary)
	}

	return result, nil
}
