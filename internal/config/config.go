package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level tally.yaml configuration. Only display
// settings live here; the withdrawal fee and limits are fixed at build
// time in the ledger package.
type Config struct {
	Display DisplayConfig `yaml:"display"`
}

// DisplayConfig controls how amounts and statements are rendered.
type DisplayConfig struct {
	CurrencyPrefix string `yaml:"currency_prefix"`
	TimeFormat     string `yaml:"time_format"` // Go reference-time layout
	Width          int    `yaml:"width"`       // statement width in columns
}

// Load reads a tally.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the display settings used when no tally.yaml exists.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			CurrencyPrefix: "R$",
			TimeFormat:     "02/01/2006 15:04:05",
			Width:          42,
		},
	}
}
