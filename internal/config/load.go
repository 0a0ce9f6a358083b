package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is consulted when no --config flag is given.
const DefaultPath = "config.yaml"

// Load reads a YAML config file and applies defaults. When path is empty and
// no config.yaml exists in the working directory, the built-in defaults are
// used as-is.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	resolved := path
	if resolved == "" {
		resolved = DefaultPath
	}

	data, err := os.ReadFile(resolved)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", resolved, err)
		}
	case path == "" && errors.Is(err, fs.ErrNotExist):
		// Optional default file is absent, run on defaults.
	default:
		return nil, fmt.Errorf("read config %s: %w", resolved, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}
