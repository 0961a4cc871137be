package fs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regup-org/regup/internal/config"
	"github.com/regup-org/regup/internal/domain"
	"github.com/regup-org/regup/internal/domain/models"
)

func newTestRecordStore(t *testing.T) (*RecordStore, string) {
	t.Helper()
	tmpDir := t.TempDir()
	cfg := &config.RuntimeConfig{
		ProjectRoot: tmpDir,
		AssetsDir:   tmpDir,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRecordStore(cfg, log), tmpDir
}

func writeRecord(t *testing.T, dir, name, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRecordStore_ListRecords(t *testing.T) {
	store, root := newTestRecordStore(t)
	ctx := context.Background()

	dir := filepath.Join(root, "v1.4.1")
	writeRecord(t, dir, "safe.json", `{"networkAddresses": {}}`)
	writeRecord(t, dir, "safe_proxy_factory.json", `{"networkAddresses": {}}`)
	writeRecord(t, dir, "README.md", "not a record")

	paths, err := store.ListRecords(ctx, "1.4.1")
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "safe.json"), paths[0])
	assert.Equal(t, filepath.Join(dir, "safe_proxy_factory.json"), paths[1])
}

func TestRecordStore_VersionNotFound(t *testing.T) {
	store, _ := newTestRecordStore(t)

	_, err := store.ListRecords(context.Background(), "9.9.9")
	assert.ErrorIs(t, err, domain.ErrVersionNotFound)
}

func TestRecordStore_VersionIsAFile(t *testing.T) {
	store, root := newTestRecordStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "v1.0.0"), []byte("x"), 0644))

	_, err := store.ListRecords(context.Background(), "1.0.0")
	assert.ErrorIs(t, err, domain.ErrVersionNotFound)
}

func TestRecordStore_NoRecordsFound(t *testing.T) {
	store, root := newTestRecordStore(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "v1.4.1"), 0755))

	_, err := store.ListRecords(context.Background(), "1.4.1")
	assert.ErrorIs(t, err, domain.ErrNoRecordsFound)
}

func TestRecordStore_LoadRecord(t *testing.T) {
	store, root := newTestRecordStore(t)
	path := writeRecord(t, filepath.Join(root, "v1.4.1"), "safe.json",
		`{"contractName": "Safe", "networkAddresses": {"1": "canonical"}}`)

	rec, err := store.LoadRecord(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "safe", rec.Name)

	na, err := rec.NetworkAddresses()
	require.NoError(t, err)
	require.Len(t, na, 1)
	assert.Equal(t, "1", na[0].ChainID)
}

func TestRecordStore_LoadMalformedRecord(t *testing.T) {
	store, root := newTestRecordStore(t)
	path := writeRecord(t, filepath.Join(root, "v1.4.1"), "broken.json", `{"networkAddresses": `)

	_, err := store.LoadRecord(context.Background(), path)
	var malformed *domain.MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, path, malformed.Path)
}

func TestRecordStore_SaveRecordFormat(t *testing.T) {
	store, root := newTestRecordStore(t)
	ctx := context.Background()
	path := writeRecord(t, filepath.Join(root, "v1.4.1"), "safe.json",
		`{"contractName": "Safe", "networkAddresses": {"1": "canonical"}, "abi": []}`)

	rec, err := store.LoadRecord(ctx, path)
	require.NoError(t, err)

	na, err := rec.NetworkAddresses()
	require.NoError(t, err)
	updated, _, err := na.AddChain("10", models.VariantCanonical)
	require.NoError(t, err)
	require.NoError(t, rec.SetNetworkAddresses(updated))
	require.NoError(t, store.SaveRecord(ctx, path, rec))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{
  "contractName": "Safe",
  "networkAddresses": {
    "1": "canonical",
    "10": "canonical"
  },
  "abi": []
}
`, string(data))

	// no temp file left behind
	assert.NoFileExists(t, path+".tmp")
}

func TestRecordStore_ListVersions(t *testing.T) {
	store, root := newTestRecordStore(t)
	for _, dir := range []string{"v1.0.0", "v1.4.1", "v1.3.0", "node_modules"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0755))
	}

	versions, err := store.ListVersions(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1.0.0", "1.4.1", "1.3.0"}, versions)
}
