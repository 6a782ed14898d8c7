package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors Config with pointer fields so we can distinguish
// "not set" from zero values when merging TOML.
type fileConfig struct {
	StartDir            *string `toml:"start_dir"`
	CaseSensitiveFilter *bool   `toml:"case_sensitive_filter"`
	HistoryLimit        *int    `toml:"history_limit"`
	LogFile             *string `toml:"log_file"`
}

// ConfigPath returns the full path to config.toml.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// LoadFile reads config.toml and merges non-nil fields into cfg.
// Returns true if the file existed, false otherwise.
func LoadFile(cfg *Config) (bool, error) {
	path := ConfigPath()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return true, err
	}

	if fc.StartDir != nil {
		cfg.StartDir = ExpandHome(*fc.StartDir)
	}
	if fc.CaseSensitiveFilter != nil {
		cfg.CaseSensitiveFilter = *fc.CaseSensitiveFilter
	}
	if fc.HistoryLimit != nil {
		cfg.HistoryLimit = *fc.HistoryLimit
	}
	if fc.LogFile != nil {
		cfg.LogFile = ExpandHome(*fc.LogFile)
	}

	return true, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, _ := os.UserHomeDir()
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
