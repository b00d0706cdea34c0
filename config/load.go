package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
)

const appDir = "magnifier"

// DefaultPath returns $XDG_CONFIG_HOME/magnifier/config.toml
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appDir, "config.toml")
}

// Load reads the settings from DefaultPath
// If no file exists, returns DefaultConfig() with environment overrides
func Load() (*Config, error) {
	return LoadFromFile(DefaultPath())
}

// LoadFromFile reads settings from a specific file path
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes settings over the defaults
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// Save writes the settings atomically, creating the directory if needed
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.toml")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(cfg); err != nil {
		tmp.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// applyEnvOverrides checks environment variables and overrides config values
// Malformed values are ignored
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MAGNIFIER_ZOOM"); v != "" {
		if z, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Magnifier.Zoom = z
		}
	}
	if v := os.Getenv("MAGNIFIER_MODE"); v != "" {
		if m, ok := core.ParseTrackingMode(v); ok {
			cfg.Magnifier.Mode = m
		}
	}
	if v := os.Getenv("MAGNIFIER_CAPTURE"); v != "" {
		cfg.Capture.Source = v
	}
}
