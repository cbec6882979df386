package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// FileName is the config file looked up in the working and config
// directories. TOMLFileName is tried after it in each directory.
const (
	FileName     = "term3d.yaml"
	TOMLFileName = "term3d.toml"
)

// Load loads configuration with priority: defaults < file < flags.
// flags may be nil.
func Load(flags *Flags) (*Config, error) {
	cfg := Default()

	if configPath := ResolvePath(flags); configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	if flags != nil {
		flags.apply(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResolvePath returns the config file Load reads: the --config flag when
// set, otherwise the first file found in the standard locations. It is
// empty when there is none.
func ResolvePath(flags *Flags) string {
	if flags != nil && flags.ConfigPath != "" {
		return flags.ConfigPath
	}
	return findConfigFile()
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./" + FileName,
		"./" + TOMLFileName,
		filepath.Join(ConfigDir(), FileName),
		filepath.Join(ConfigDir(), TOMLFileName),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Term3D")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Term3D")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "term3d")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "term3d")
	}
}

// loadFromFile loads config from a YAML or TOML file, merging with existing
// values. A file that lists scene objects replaces the default object list.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return unmarshal(FormatOf(path), data, cfg)
}

// LoadFile reads a single file over the defaults and validates the result.
// Flags are not applied.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
