package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Archive   string `toml:"archive"`
	UserName  string `toml:"user_name"`
	UserEmail string `toml:"user_email"`
	LogLevel  string `toml:"log_level"`
	Color     bool   `toml:"color"`
}

// DefaultPath is ~/.config/gcr/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gcr", "config.toml"), nil
}

// Load reads the config file at path (DefaultPath when empty) over the
// defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Archive:  filepath.Join(home, "Downloads", "Takeout"),
		LogLevel: "warn",
		Color:    true,
	}

	if path == "" {
		path = filepath.Join(home, ".config", "gcr", "config.toml")
	}
	path = expandHome(path, home)
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	// expand ~ in paths
	cfg.Archive = expandHome(cfg.Archive, home)

	return cfg, nil
}

// HasUser reports whether both user name and email are configured.
func (c *Config) HasUser() bool {
	return c.UserName != "" && c.UserEmail != ""
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
