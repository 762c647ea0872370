// Package config loads the shell's TOML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const fileName = ".goshrc.toml"

type Config struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
}

func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Prompt:      "$ ",
		HistoryFile: filepath.Join(home, ".gosh_history"),
	}
}

// DefaultPath is the config file location, ~/.goshrc.toml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, fileName)
}

// Load reads the config at path over the defaults. A missing file is not an
// error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = "$ "
	}
	return cfg, nil
}
