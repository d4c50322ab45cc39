// Package config handles the sked configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user-tunable settings.
type Config struct {
	// DBPath is the SQLite database location.
	DBPath string `yaml:"db_path"`
	// ShowCompleted includes completed tasks in listings by default.
	ShowCompleted bool `yaml:"show_completed"`
	// DateFormat is the layout used when printing deadlines.
	DateFormat string `yaml:"date_format"`
}

// DefaultConfig returns a sensible default configuration. Data lives
// under the user config directory, next to the config file itself.
func DefaultConfig() *Config {
	base := baseDir()
	return &Config{
		DBPath:        filepath.Join(base, "sked.db"),
		ShowCompleted: false,
		DateFormat:    "2006-01-02 15:04",
	}
}

// Load reads configuration from path, or from the default location when
// path is empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = filepath.Join(baseDir(), "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultConfig().DBPath
	}
	if cfg.DateFormat == "" {
		cfg.DateFormat = DefaultConfig().DateFormat
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = filepath.Join(baseDir(), "config.yaml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func baseDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "sked")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".sked")
}
