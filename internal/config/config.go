// Package config loads the server configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the server settings.
type Config struct {
	ListenAddr  string `yaml:"listenAddr"`
	RecordDir   string `yaml:"recordDir"`
	CORSOrigin  string `yaml:"corsOrigin"`
	DefaultSeed int64  `yaml:"defaultSeed"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		ListenAddr: ":8080",
		RecordDir:  "./records",
		CORSOrigin: "*",
	}
}

// Load reads a YAML config file, applying defaults for absent fields.
// A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = Default().ListenAddr
	}
	if cfg.RecordDir == "" {
		cfg.RecordDir = Default().RecordDir
	}
	return cfg, nil
}
