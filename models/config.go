// Package models defines data structures for configuration.
package models

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/textstats/pkg/analytics"
)

const (
	DefaultInput       = "moby.txt"
	DefaultTopN        = 5
	DefaultUniqueLimit = 50
	DefaultFormat      = "text"
)

// Config holds runtime configuration for an analysis run.
// Values come from an optional YAML file and are overridden by CLI flags.
type Config struct {
	Input       string   `yaml:"input"`
	StopWords   []string `yaml:"stop_words"`
	TopN        int      `yaml:"top_n"`
	UniqueLimit int      `yaml:"unique_limit"`
	Stem        bool     `yaml:"stem"`
	Format      string   `yaml:"format"`
	Output      string   `yaml:"output,omitempty"`
}

// DefaultConfig returns the configuration used when nothing is specified.
func DefaultConfig() *Config {
	return &Config{
		Input:       DefaultInput,
		StopWords:   analytics.DefaultStopWords().Words(),
		TopN:        DefaultTopN,
		UniqueLimit: DefaultUniqueLimit,
		Format:      DefaultFormat,
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig. Keys missing
// from the file keep their defaults; an explicit empty stop_words list
// disables filtering.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values no run can use.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return fmt.Errorf("input must not be empty")
	}
	if c.TopN < 0 {
		return fmt.Errorf("top_n must be >= 0, got %d", c.TopN)
	}
	if c.UniqueLimit < 0 {
		return fmt.Errorf("unique_limit must be >= 0, got %d", c.UniqueLimit)
	}
	switch strings.ToLower(strings.TrimSpace(c.Format)) {
	case "", "text", "json", "yaml", "yml":
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	return nil
}
