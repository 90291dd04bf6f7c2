// internal/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type Config struct {
	Git struct {
		Binary string `json:"binary"` // executable used to list tracked files
		Dir    string `json:"dir"`    // repository working directory
	} `json:"git"`

	LogLevel string `json:"log_level"` // debug, info, warn, error
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.Git.Binary = "git"
	cfg.Git.Dir = "."
	cfg.LogLevel = "warn"
	return &cfg
}

// Load reads a JSON file over the defaults. An empty path returns Default().
func Load(path string) (*Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(config); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	// Keep defaults for fields the file blanked out.
	if config.Git.Binary == "" {
		config.Git.Binary = "git"
	}
	if config.Git.Dir == "" {
		config.Git.Dir = "."
	}
	if config.LogLevel == "" {
		config.LogLevel = "warn"
	}

	return config, nil
}
