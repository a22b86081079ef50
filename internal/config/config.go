// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultStoreName = "todo.txt"
	DefaultLogLevel  = "warn"
)

// Config holds the full configuration for todocras.
type Config struct {
	// StoreFile is the path to the store file. Defaults to todo.txt in
	// the user's home directory.
	StoreFile string `toml:"store_file"`

	// MarkBacklog annotates past-deadline tasks in display output.
	MarkBacklog bool `toml:"backlog_marker"`

	// NoColor disables colorized output.
	NoColor bool `toml:"no_color"`

	// LogLevel controls parse diagnostics on stderr.
	LogLevel string `toml:"log_level"`
}

// Load builds the configuration from, in priority order: defaults, the
// user config file (if any), then environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if path := findUserConfigFile(); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	loadFromEnv(cfg)

	if err := finalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.MarkBacklog = true
	cfg.LogLevel = DefaultLogLevel
}

// findUserConfigFile returns the first config file that exists:
// $XDG_CONFIG_HOME/todocras/todocras.toml (or ~/.config/...), then
// ~/.todocras.toml. A missing file is not an error.
func findUserConfigFile() string {
	var candidates []string

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			configDir = filepath.Join(home, ".config")
		}
	}
	if configDir != "" {
		candidates = append(candidates, filepath.Join(configDir, "todocras", "todocras.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".todocras.toml"))
	}

	for _, path := range candidates {
		if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
			return path
		}
	}
	return ""
}

// loadFromEnv overrides config from environment variables. TODO_FILE is
// honored for compatibility with the original tool and wins over
// TODOCRAS_FILE.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TODOCRAS_FILE"); v != "" {
		cfg.StoreFile = v
	}
	if v := os.Getenv("TODO_FILE"); v != "" {
		cfg.StoreFile = v
	}
	if v := os.Getenv("TODOCRAS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.NoColor = true
	}
}

// finalize fills in the default store path and expands a leading tilde.
func finalize(cfg *Config) error {
	if cfg.StoreFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolving store file: %w", err)
		}
		cfg.StoreFile = filepath.Join(home, DefaultStoreName)
		return nil
	}

	expanded, err := expandHome(cfg.StoreFile)
	if err != nil {
		return fmt.Errorf("resolving store file: %w", err)
	}
	cfg.StoreFile = expanded
	return nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
