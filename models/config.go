// Package models defines the shared data structures for records, blocks,
// databases and runtime configuration.
package models

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML can spell values like "1h" or "30m".
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config holds the runtime configuration for an audit run. Values come from
// an optional config.yaml, overridden by CLI flags; the token is only ever
// read from a flag or the NOTION_TOKEN environment variable.
type Config struct {
	Token            string   `yaml:"-"`
	DatabaseIDs      []string `yaml:"database_ids"`
	ThresholdDays    int      `yaml:"threshold_days"`
	WarningThreshold float64  `yaml:"warning_threshold"`
	DecayThresholds  []int    `yaml:"decay_thresholds"`
	SampleRate       float64  `yaml:"sample_rate"`
	WorkerCount      int      `yaml:"workers"`
	OutputDir        string   `yaml:"output_dir"`
	CacheMaxAge      Duration `yaml:"cache_max_age"`
}

// DefaultConfig returns a Config with the documented defaults filled in.
func DefaultConfig() *Config {
	return &Config{
		ThresholdDays:    30,
		WarningThreshold: 40.0,
		DecayThresholds:  []int{30, 90, 150, 300},
		SampleRate:       0.1,
		WorkerCount:      4,
		OutputDir:        "report",
		CacheMaxAge:      Duration(time.Hour),
	}
}

// LoadConfig reads a YAML config file and merges it over the defaults.
// A missing file is not an error: the defaults are returned as-is.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return config, nil
}

// Validate checks the ranges a run depends on.
func (c *Config) Validate() error {
	if c.ThresholdDays <= 0 {
		return fmt.Errorf("threshold_days must be positive, got %d", c.ThresholdDays)
	}
	if c.SampleRate <= 0 || c.SampleRate > 1 {
		return fmt.Errorf("sample_rate must be in (0, 1], got %g", c.SampleRate)
	}
	if c.WorkerCount <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.WorkerCount)
	}
	for _, t := range c.DecayThresholds {
		if t <= 0 {
			return fmt.Errorf("decay thresholds must be positive, got %d", t)
		}
	}
	return nil
}
