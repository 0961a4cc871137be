package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/regup-org/regup/internal/config"
	"github.com/regup-org/regup/internal/domain"
	"github.com/regup-org/regup/internal/domain/models"
	"github.com/regup-org/regup/internal/usecase"
)

const (
	// VersionDirPrefix is prepended to the version string to form the asset
	// directory name, e.g. assets/v1.4.1
	VersionDirPrefix = "v"

	// RecordSuffix identifies deployment record files
	RecordSuffix = ".json"
)

// RecordStore reads and writes deployment record files under the assets
// root, one directory per released version.
type RecordStore struct {
	assetsRoot string
	log        *slog.Logger
}

// NewRecordStore creates a record store rooted at the configured assets
// directory.
func NewRecordStore(cfg *config.RuntimeConfig, log *slog.Logger) *RecordStore {
	return &RecordStore{
		assetsRoot: cfg.AssetsDir,
		log:        log,
	}
}

func (s *RecordStore) versionDir(version string) string {
	return filepath.Join(s.assetsRoot, VersionDirPrefix+version)
}

// ListRecords returns the record file paths for a version, sorted by name.
func (s *RecordStore) ListRecords(ctx context.Context, version string) ([]string, error) {
	dir := s.versionDir(version)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrVersionNotFound, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read version directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), RecordSuffix) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", domain.ErrNoRecordsFound, dir)
	}

	sort.Strings(paths)
	s.log.Debug("enumerated deployment records", "version", version, "count", len(paths))
	return paths, nil
}

// LoadRecord reads and parses one deployment record.
func (s *RecordStore) LoadRecord(ctx context.Context, path string) (*models.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record %s: %w", path, err)
	}

	var rec models.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, &domain.MalformedRecordError{Path: path, Err: err}
	}
	rec.Name = strings.TrimSuffix(filepath.Base(path), RecordSuffix)
	return &rec, nil
}

// SaveRecord writes a record back in place with stable 2-space indentation
// and a trailing newline.
func (s *RecordStore) SaveRecord(ctx context.Context, path string, rec *models.Record) error {
	compact, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to serialize record %s: %w", path, err)
	}

	data, err := indentDocument(compact)
	if err != nil {
		return fmt.Errorf("failed to serialize record %s: %w", path, err)
	}

	// Write to temp file first, then atomic rename
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write record %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write record %s: %w", path, err)
	}

	s.log.Debug("saved deployment record", "path", path)
	return nil
}

// indentDocument re-indents a compact JSON document with 2 spaces and
// appends a trailing newline.
func indentDocument(compact []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// ListVersions returns every version with an asset directory, unsorted.
func (s *RecordStore) ListVersions(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.assetsRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to read assets directory %s: %w", s.assetsRoot, err)
	}

	var versions []string
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), VersionDirPrefix) {
			continue
		}
		versions = append(versions, strings.TrimPrefix(entry.Name(), VersionDirPrefix))
	}
	return versions, nil
}

// Ensure the adapter implements the port
var _ usecase.RecordStore = (*RecordStore)(nil)
