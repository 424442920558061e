package main

import (
	"fmt"
	"os"

	"github.com/remytrichard/splitics"
	"gopkg.in/yaml.v3"
)

// Config carries optional defaults loaded from a YAML file. Flags given on
// the command line always win over config values.
type Config struct {
	// Size is a size specification like "500K" or "1M".
	Size string `yaml:"size"`
	// Events is the maximum event count per output file, 0 for unbounded.
	Events int `yaml:"events"`
	// Encoding is the IANA name of the output character set.
	Encoding string `yaml:"encoding"`
	// Overwrite allows replacing existing output files.
	Overwrite bool `yaml:"overwrite"`
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Size != "" {
		if _, err := splitics.ParseSize(c.Size); err != nil {
			return err
		}
	}
	if c.Events < 0 {
		return fmt.Errorf("events must not be negative, got %d", c.Events)
	}
	if c.Encoding != "" {
		if _, err := splitics.Charset(c.Encoding); err != nil {
			return err
		}
	}
	return nil
}
