package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"fastcat.org/go/jrun/instance"
)

// Path returns the configuration file location.
func Path() string {
	return os.ExpandEnv("${HOME}/.config/" + instance.AppName + ".yaml")
}

// knownKeys lets Load reject typoed keys instead of silently ignoring them.
var knownKeys = map[string]bool{
	"default-jail": true,
	"env":          true,
	"aliases":      true,
}

// Load reads and validates the configuration file. A missing file is not an
// error; it loads as the zero configuration.
func Load() (*Config, error) {
	cfg := &Config{}
	raw, err := os.ReadFile(Path())
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	// check for unknown keys before decoding for real
	var loose map[string]any
	if err := yaml.Unmarshal(raw, &loose); err != nil {
		return nil, fmt.Errorf("error loading config %q: %w", Path(), err)
	}
	for k := range loose {
		if !knownKeys[k] {
			return nil, fmt.Errorf("unknown config key %q in %q", k, Path())
		}
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("error loading config %q: %w", Path(), err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", Path(), err)
	}
	return cfg, nil
}

// Save writes the configuration atomically: to a temp file in the same
// directory, then renamed over the real one.
func Save(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	fn := Path() + ".tmp"
	if err := os.MkdirAll(filepath.Dir(fn), 0o755); err != nil {
		return fmt.Errorf("error creating config dir: %w", err)
	}
	f, err := os.Create(fn)
	if err != nil {
		return fmt.Errorf("error creating config temp file %q: %w", fn, err)
	}
	defer f.Close()

	e := yaml.NewEncoder(f)
	if err := e.Encode(cfg); err != nil {
		return fmt.Errorf("error writing config file %q: %w", fn, err)
	} else if err := f.Sync(); err != nil {
		return fmt.Errorf("error syncing config file %q: %w", fn, err)
	} else if err := f.Close(); err != nil {
		return fmt.Errorf("error closing config file %q: %w", fn, err)
	} else if err := os.Rename(fn, strings.TrimSuffix(fn, ".tmp")); err != nil {
		return fmt.Errorf("error renaming config file %q: %w", fn, err)
	}

	return nil
}
