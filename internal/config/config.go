// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all rolodex configuration.
type Config struct {
	Birthdays Birthdays `yaml:"birthdays"`
	UI        UI        `yaml:"ui"`
	Demo      Demo      `yaml:"demo"`
}

// Birthdays holds upcoming-birthday query settings.
type Birthdays struct {
	Window int `yaml:"window"` // Day span for the upcoming query, inclusive.
}

// UI holds terminal output settings.
type UI struct {
	Plain bool `yaml:"plain"` // Force plain text output even on a TTY.
}

// Demo holds browse-session seeding settings.
type Demo struct {
	Seed bool `yaml:"seed"` // Preload sample contacts into browse sessions.
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Birthdays: Birthdays{Window: 7},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Birthdays.Window < 0 {
		return fmt.Errorf("config: birthdays.window must be non-negative, got %d", c.Birthdays.Window)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ROLODEX_WINDOW, ROLODEX_PLAIN.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ROLODEX_WINDOW"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid ROLODEX_WINDOW %q: %w", v, err)
		}
		c.Birthdays.Window = n
	}
	if v := os.Getenv("ROLODEX_PLAIN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid ROLODEX_PLAIN %q: %w", v, err)
		}
		c.UI.Plain = b
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Birthdays *rawBirthdays `yaml:"birthdays"`
	UI        *rawUI        `yaml:"ui"`
	Demo      *rawDemo      `yaml:"demo"`
}

type rawBirthdays struct {
	Window *int `yaml:"window"`
}

type rawUI struct {
	Plain *bool `yaml:"plain"`
}

type rawDemo struct {
	Seed *bool `yaml:"seed"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Birthdays != nil && layer.Birthdays.Window != nil {
		c.Birthdays.Window = *layer.Birthdays.Window
	}
	if layer.UI != nil && layer.UI.Plain != nil {
		c.UI.Plain = *layer.UI.Plain
	}
	if layer.Demo != nil && layer.Demo.Seed != nil {
		c.Demo.Seed = *layer.Demo.Seed
	}
}
