package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for registry operations
var (
	// ErrInvalidVariant is returned when a deployment variant is not one of
	// the recognized tags
	ErrInvalidVariant = errors.New("invalid deployment variant")

	// ErrInvalidChainID is returned when a chain ID is not a non-negative
	// decimal integer
	ErrInvalidChainID = errors.New("invalid chain ID")

	// ErrVersionNotFound is returned when no asset directory exists for the
	// requested version
	ErrVersionNotFound = errors.New("version not found")

	// ErrNoRecordsFound is returned when a version directory contains no
	// deployment records
	ErrNoRecordsFound = errors.New("no deployment records found")

	// ErrRecordNotFound is returned when a record reference matches nothing
	ErrRecordNotFound = errors.New("record not found")
)

// MalformedRecordError reports a deployment record that failed to parse.
type MalformedRecordError struct {
	Path string
	Err  error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed deployment record %s: %v", e.Path, e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

type AmbiguousRecordErr struct {
	Query   string
	Matches []string
}

func (e AmbiguousRecordErr) Error() string {
	sorted := make([]string, len(e.Matches))
	copy(sorted, e.Matches)
	sort.Strings(sorted)

	var suggestions []string
	for _, name := range sorted {
		suggestions = append(suggestions, fmt.Sprintf("  - %s", name))
	}

	return fmt.Sprintf("multiple records match %q - use the exact record name to disambiguate:\n%s",
		e.Query, strings.Join(suggestions, "\n"))
}
