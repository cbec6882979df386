package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a config file encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the encoding from the file extension. Anything other than
// .toml is read as YAML.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

func unmarshal(format Format, data []byte, cfg *Config) error {
	switch format {
	case FormatTOML:
		// Array tables decode into the existing elements, so a file that
		// lists objects has to start from an empty list.
		var probe struct {
			Scene struct {
				Objects []ObjectConfig `toml:"objects"`
			} `toml:"scene"`
		}
		if err := toml.Unmarshal(data, &probe); err != nil {
			return fmt.Errorf("parsing toml: %w", err)
		}
		if len(probe.Scene.Objects) > 0 {
			cfg.Scene.Objects = nil
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parsing toml: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parsing yaml: %w", err)
		}
	}
	return nil
}

func marshal(format Format, cfg *Config) ([]byte, error) {
	if format == FormatTOML {
		return toml.Marshal(cfg)
	}
	return yaml.Marshal(cfg)
}

// Encode renders the config in the given format.
func (c *Config) Encode(format Format) ([]byte, error) {
	return marshal(format, c)
}
