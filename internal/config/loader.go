package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load discovers a config file, merges it with defaults, applies
// environment variable overrides, validates the result, and returns the
// final config.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return LoadFrom(cwd)
}

// LoadFrom loads config using the given directory for file discovery.
// This is the testable entry point — Load() calls it with os.Getwd().
func LoadFrom(dir string) (*Config, error) {
	cfg := DefaultConfig()

	path := discoverConfigPath(dir)
	if path != "" {
		override, err := loadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		merge(&cfg, override)
	}

	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigPath returns the first config file in the discovery chain,
// or empty string for defaults-only mode.
func discoverConfigPath(dir string) string {
	local := filepath.Join(dir, "filmstrip.yaml")
	if _, err := os.Stat(local); err == nil {
		return local
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	user := filepath.Join(home, ".config", "filmstrip", "config.yaml")
	if _, err := os.Stat(user); err == nil {
		return user
	}

	return ""
}

func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	return &cfg, nil
}

// merge applies override onto base; scalar fields override when non-zero.
func merge(base *Config, override *Config) {
	if override.Preview.Bind != "" {
		base.Preview.Bind = override.Preview.Bind
	}
	if override.Preview.CrossfadeMS != 0 {
		base.Preview.CrossfadeMS = override.Preview.CrossfadeMS
	}
	if override.Preview.AdvanceMS != 0 {
		base.Preview.AdvanceMS = override.Preview.AdvanceMS
	}
	if override.UI.Theme != "" {
		base.UI.Theme = override.UI.Theme
	}
	if override.UI.TypewriterMS != 0 {
		base.UI.TypewriterMS = override.UI.TypewriterMS
	}
	if override.Stream.BufferSize != 0 {
		base.Stream.BufferSize = override.Stream.BufferSize
	}
}

// applyEnvOverrides applies FILMSTRIP_* environment variables on top of
// the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FILMSTRIP_BIND"); v != "" {
		cfg.Preview.Bind = v
	}
	if v := os.Getenv("FILMSTRIP_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("FILMSTRIP_TYPEWRITER_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.UI.TypewriterMS = n
		} else {
			fmt.Fprintf(os.Stderr, "warning: FILMSTRIP_TYPEWRITER_MS=%q is not a valid integer, ignoring\n", v)
		}
	}
	if v := os.Getenv("FILMSTRIP_ADVANCE_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Preview.AdvanceMS = n
		} else {
			fmt.Fprintf(os.Stderr, "warning: FILMSTRIP_ADVANCE_MS=%q is not a valid integer, ignoring\n", v)
		}
	}
}

func validate(cfg *Config) error {
	if cfg.Preview.CrossfadeMS <= 0 {
		return fmt.Errorf("preview.crossfade_ms must be positive, got %d", cfg.Preview.CrossfadeMS)
	}
	if cfg.Preview.AdvanceMS < cfg.Preview.CrossfadeMS {
		return fmt.Errorf("preview.advance_ms (%d) must not be shorter than the crossfade (%d)",
			cfg.Preview.AdvanceMS, cfg.Preview.CrossfadeMS)
	}
	if cfg.UI.TypewriterMS <= 0 {
		return fmt.Errorf("ui.typewriter_ms must be positive, got %d", cfg.UI.TypewriterMS)
	}
	if cfg.Stream.BufferSize <= 0 {
		return fmt.Errorf("stream.buffer_size must be positive, got %d", cfg.Stream.BufferSize)
	}
	return nil
}
