// Package config provides configuration loading and management for saagraph.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/goldenagents/saagraph/convert"
	"github.com/goldenagents/saagraph/export"
)

// Config represents the complete saagraph configuration
type Config struct {
	Datasets []DatasetConfig `yaml:"datasets"`
	Matching MatchingConfig  `yaml:"matching"`
	Output   OutputConfig    `yaml:"output"`
	NATS     NATSConfig      `yaml:"nats"`
}

// DatasetConfig configures one source dataset
type DatasetConfig struct {
	// Name identifies the dataset in logs and output file names
	Name string `yaml:"name"`
	// Schema selects the column layout and dialect: getty, gpi, or frick
	Schema string `yaml:"schema"`
	// Descriptions are glob patterns for the description CSV files
	Descriptions []string `yaml:"descriptions"`
	// Contents are glob patterns for the item/contents CSV files
	Contents []string `yaml:"contents"`
}

// MatchingConfig configures the record linkage run
type MatchingConfig struct {
	// Candidates are glob patterns for the pre-joined candidate CSV files
	Candidates []string `yaml:"candidates"`
	// Threshold is the similarity score a candidate must strictly exceed
	// (0 = engine default)
	Threshold float64 `yaml:"threshold"`
	// ActTypes overrides the act-type whitelist (empty = engine default)
	ActTypes []string `yaml:"act_types"`
}

// OutputConfig configures where and how results are written
type OutputConfig struct {
	// Dir is the output directory
	Dir string `yaml:"dir"`
	// Format is the graph serialization format: trig, turtle, or ntriples
	Format string `yaml:"format"`
	// Linkset is the linkset output file name within Dir
	Linkset string `yaml:"linkset"`
}

// NATSConfig configures the optional knowledge-graph ingest connection
type NATSConfig struct {
	// URL is the NATS server URL (empty = no publishing)
	URL string `yaml:"url"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Datasets: nil,
		Matching: MatchingConfig{
			Threshold: 0, // Engine default
		},
		Output: OutputConfig{
			Dir:     "out",
			Format:  "trig",
			Linkset: "linkset.ttl",
		},
		NATS: NATSConfig{
			URL: "",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	schemas := convert.Schemas()
	for i, ds := range c.Datasets {
		if ds.Name == "" {
			return fmt.Errorf("datasets[%d].name is required", i)
		}
		if _, ok := schemas[ds.Schema]; !ok {
			return fmt.Errorf("datasets[%d].schema %q is not one of getty, gpi, frick", i, ds.Schema)
		}
	}
	if c.Matching.Threshold < 0 || c.Matching.Threshold > 1 {
		return fmt.Errorf("matching.threshold must be between 0 and 1")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	if _, err := export.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Datasets replace wholesale; partial dataset lists cannot be merged
	// meaningfully
	if len(other.Datasets) > 0 {
		c.Datasets = other.Datasets
	}

	// Matching
	if len(other.Matching.Candidates) > 0 {
		c.Matching.Candidates = other.Matching.Candidates
	}
	if other.Matching.Threshold != 0 {
		c.Matching.Threshold = other.Matching.Threshold
	}
	if len(other.Matching.ActTypes) > 0 {
		c.Matching.ActTypes = other.Matching.ActTypes
	}

	// Output
	if other.Output.Dir != "" {
		c.Output.Dir = other.Output.Dir
	}
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if other.Output.Linkset != "" {
		c.Output.Linkset = other.Output.Linkset
	}

	// NATS
	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}
}
