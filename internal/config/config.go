// Package config loads spatialseqmine's run configuration from an optional
// YAML file, with CLI flags taking precedence over file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the flags in cmd/spatialseqmine: a YAML file lets a batch
// job pin down parameters once instead of repeating flags across --jobs.
type Config struct {
	Input     string `yaml:"input"`
	Neighbors string `yaml:"neighbors"`
	Sep       string `yaml:"sep"`
	MinSup    string `yaml:"min_sup"`
	MaxLength int    `yaml:"max_length"`
	MaxGap    int    `yaml:"max_gap"`
	Output    string `yaml:"output"`
	LogLevel  string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given. Its Sep
// and MinSup match the mine command's flag defaults; LogLevel is parsed
// from files but not read by the mine command, which logs at Info unless
// --verbose is set.
func Default() *Config {
	return &Config{
		Sep:      "\t",
		MinSup:   "0.5",
		LogLevel: "warn",
	}
}

// Load reads a YAML config file, returning defaults if path is empty.
// A missing file at a non-empty path is an error: unlike a default path
// that's allowed to not exist yet, an explicitly named file should exist.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
