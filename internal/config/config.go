// Package config loads persisted defaults for the dotcode CLI, the way
// dfbb-im2code's internal/config loads bridge settings: a YAML file with a
// defaulted zero value, merged over whatever the caller actually wrote.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds CLI defaults a user can pin in a config file instead of
// repeating on every invocation.
type Config struct {
	LogLevel  string `yaml:"loglevel"`
	XDim      int    `yaml:"xdim"`
	Undercut  int    `yaml:"undercut"`
	QuietZone int    `yaml:"quiet_zone"`
	DotShape  string `yaml:"dot_shape"` // "round" or "square"
}

// Defaults returns a Config populated with the reference encoder's own
// command-line defaults (xdim=5, undercut=0, quiet zone=3, round dots).
func Defaults() *Config {
	return &Config{
		LogLevel:  "warn",
		XDim:      5,
		Undercut:  0,
		QuietZone: 3,
		DotShape:  "round",
	}
}

// Load reads cfg from path, starting from Defaults and overwriting only the
// fields present in the file. A missing file is not an error: Load returns
// Defaults() unchanged so a first run behaves sensibly without a config file.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path in YAML format, creating parent directories as
// needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
