package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// SetupViper creates the viper instance commands bind their flags into.
func SetupViper(projectRoot string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("REGUP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	v.SetDefault("project_root", projectRoot)
	return v
}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	fileCfg, err := LoadRegupFile(projectRoot)
	if err != nil {
		return nil, err
	}

	assetsDir := v.GetString("assets_dir")
	if assetsDir == "" {
		assetsDir = fileCfg.AssetsDir
	}
	if !filepath.IsAbs(assetsDir) {
		assetsDir = filepath.Join(projectRoot, assetsDir)
	}

	return &RuntimeConfig{
		ProjectRoot: projectRoot,
		AssetsDir:   assetsDir,
		Debug:       v.GetBool("debug"),
	}, nil
}

// FindProjectRoot walks up from the current directory to find regup.toml or
// an assets directory.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, RegupFileName)); err == nil {
			return dir, nil
		}
		if info, err := os.Stat(filepath.Join(dir, DefaultAssetsDir)); err == nil && info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a registry project (%s not found)", RegupFileName)
		}
		dir = parent
	}
}
