// Package config loads the optional YAML config file. Command-line flags win
// over file values, file values win over defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/PauloHenriqueJr/storyspark-sub002/internal/constants"
)

type Config struct {
	// Database is a SQLite path or a postgres:// connection string.
	Database string `yaml:"database"`
	// DefaultView is the calendar view the TUI starts in: month, week or list.
	DefaultView string `yaml:"default_view"`
	// DefaultPlatform is the initial platform filter.
	DefaultPlatform string `yaml:"default_platform"`
	Debug           bool   `yaml:"debug"`
}

func Default() Config {
	return Config{
		Database:        constants.DefaultConfigPath,
		DefaultView:     string(constants.ViewMonth),
		DefaultPlatform: constants.PlatformAll,
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() string {
	return filepath.Join("~", ".config", constants.AppName, "config.yaml")
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist. A present-but-broken file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	expanded, err := ExpandPath(path)
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Database == "" {
		cfg.Database = constants.DefaultConfigPath
	}
	if cfg.DefaultView == "" {
		cfg.DefaultView = string(constants.ViewMonth)
	}
	if cfg.DefaultPlatform == "" {
		cfg.DefaultPlatform = constants.PlatformAll
	}
	return cfg, nil
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
