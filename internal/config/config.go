// Package config loads and validates ccs configuration from .ccs/config.json.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"ccs/internal/complexity"
)

// Config represents the complete ccs configuration
type Config struct {
	Version int `json:"version" mapstructure:"version"`

	// Thresholds maps metric names to flagging thresholds. A metric absent
	// here uses the default of 15. A threshold of 0 is accepted and flags
	// every unit.
	Thresholds map[string]int `json:"thresholds" mapstructure:"thresholds"`

	// Include and Exclude are gitignore-style globs applied during file
	// discovery. An empty Include matches everything.
	Include []string `json:"include" mapstructure:"include"`
	Exclude []string `json:"exclude" mapstructure:"exclude"`

	Output OutputConfig `json:"output" mapstructure:"output"`

	// Jobs is the worker count for the batch runner; 0 means one worker per
	// available CPU.
	Jobs int `json:"jobs" mapstructure:"jobs"`

	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Format   string `json:"format" mapstructure:"format"`
	Dir      string `json:"dir" mapstructure:"dir"`
	Write    bool   `json:"write" mapstructure:"write"`
	Compress bool   `json:"compress" mapstructure:"compress"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

var validFormats = map[string]bool{
	"markdown": true,
	"html":     true,
	"json":     true,
	"all":      true,
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Thresholds: map[string]int{
			string(complexity.Cyclomatic): complexity.DefaultThreshold,
			string(complexity.Cognitive):  complexity.DefaultThreshold,
		},
		Include: []string{},
		Exclude: []string{},
		Output: OutputConfig{
			Format: "markdown",
			Dir:    "ccs-report",
			Write:  true,
		},
		Jobs: 0,
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig loads configuration from <root>/.ccs/config.json, falling back
// to DefaultConfig when the file does not exist.
func LoadConfig(root string) (*Config, error) {
	v := viper.New()

	v.SetDefault("version", 1)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(root, ".ccs"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to <root>/.ccs/config.json
func (c *Config) Save(root string) error {
	dir := filepath.Join(root, ".ccs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}

// Validate surfaces configuration errors before any analysis starts: unknown
// metric names and negative thresholds are rejected here, not per file.
func (c *Config) Validate() error {
	for name, value := range c.Thresholds {
		if _, err := complexity.ParseMetric(name); err != nil {
			return err
		}
		if value < 0 {
			return fmt.Errorf("threshold for %s must not be negative, got %d", name, value)
		}
	}

	if c.Output.Format != "" && !validFormats[c.Output.Format] {
		return fmt.Errorf("unknown output format %q (supported: markdown, html, json, all)", c.Output.Format)
	}

	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}

	return nil
}

// MetricThresholds converts the configured threshold map into the engine's
// threshold table. Call Validate first; unknown metric names are skipped
// here. Values above the cap are clamped by the table itself.
func (c *Config) MetricThresholds() complexity.Thresholds {
	t := complexity.Thresholds{}
	for name, value := range c.Thresholds {
		m, err := complexity.ParseMetric(name)
		if err != nil {
			continue
		}
		t.Set(m, value)
	}
	return t
}
