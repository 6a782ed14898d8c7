package config

import (
	"os"
	"path/filepath"
)

type Config struct {
	StartDir            string
	CaseSensitiveFilter bool
	HistoryLimit        int
	LogFile             string
}

func Default() Config {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return Config{
		StartDir:            wd,
		CaseSensitiveFilter: false,
		HistoryLimit:        9,
		LogFile:             filepath.Join(StateDir(), "fex.log"),
	}
}

// ConfigDir returns the fex config directory, respecting XDG_CONFIG_HOME.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fex")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fex")
}

// DataDir returns the fex data directory (history db), respecting
// XDG_DATA_HOME.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "fex")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "fex")
}

// StateDir returns the fex state directory (log file), respecting
// XDG_STATE_HOME.
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "fex")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "fex")
}
