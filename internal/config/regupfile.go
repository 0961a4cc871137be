package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// RegupFileName is the project marker and config file
const RegupFileName = "regup.toml"

// DefaultAssetsDir is used when regup.toml does not set one
const DefaultAssetsDir = "assets"

// RegupFile models the regup.toml project file.
type RegupFile struct {
	// AssetsDir is the assets root, relative to the project root unless
	// absolute
	AssetsDir string `toml:"assets_dir"`
}

// LoadRegupFile parses regup.toml in the project root. A missing file
// yields defaults.
func LoadRegupFile(projectRoot string) (*RegupFile, error) {
	cfg := &RegupFile{AssetsDir: DefaultAssetsDir}

	path := filepath.Join(projectRoot, RegupFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.AssetsDir == "" {
		cfg.AssetsDir = DefaultAssetsDir
	}
	return cfg, nil
}
