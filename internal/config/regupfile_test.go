package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRegupFile_Missing(t *testing.T) {
	cfg, err := LoadRegupFile(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultAssetsDir, cfg.AssetsDir)
}

func TestLoadRegupFile_AssetsDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, RegupFileName),
		[]byte("assets_dir = \"deployments\"\n"), 0644))

	cfg, err := LoadRegupFile(root)
	require.NoError(t, err)
	assert.Equal(t, "deployments", cfg.AssetsDir)
}

func TestLoadRegupFile_Invalid(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, RegupFileName),
		[]byte("assets_dir = [broken\n"), 0644))

	_, err := LoadRegupFile(root)
	assert.Error(t, err)
}

func TestProvider_ResolvesAssetsDir(t *testing.T) {
	root := t.TempDir()

	v := SetupViper(root)
	cfg, err := Provider(v)
	require.NoError(t, err)
	assert.Equal(t, root, cfg.ProjectRoot)
	assert.Equal(t, filepath.Join(root, DefaultAssetsDir), cfg.AssetsDir)
}

func TestProvider_AssetsDirOverride(t *testing.T) {
	root := t.TempDir()

	v := SetupViper(root)
	v.Set("assets_dir", "custom")
	cfg, err := Provider(v)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "custom"), cfg.AssetsDir)
}
