// Package config provides configuration loading and management for ecrdf.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ecgraph/ecrdf/mapper"
)

// Config represents the complete ecrdf configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Mapping MappingConfig `yaml:"mapping"`
	NATS    NATSConfig    `yaml:"nats"`
}

// OutputConfig configures the Turtle artifact.
type OutputConfig struct {
	// Path is the output file; truncated at the start of every run.
	Path string `yaml:"path"`
}

// MappingConfig configures mapper behavior.
type MappingConfig struct {
	// RelationshipConvention selects the default supertype for baseless
	// relationship classes: "single" or "split".
	RelationshipConvention string `yaml:"relationship_convention"`
	// Dedupe enables defensive suppression of repeated class/property
	// declarations when the traversal cannot guarantee single visitation.
	Dedupe bool `yaml:"dedupe"`
}

// NATSConfig configures optional document publication. An empty subject
// disables publishing.
type NATSConfig struct {
	URL     string `yaml:"url"`
	Subject string `yaml:"subject"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Path: "out.ttl",
		},
		Mapping: MappingConfig{
			RelationshipConvention: "single",
		},
		NATS: NATSConfig{},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Output.Path == "" {
		return fmt.Errorf("output.path is required")
	}
	switch c.Mapping.RelationshipConvention {
	case "single", "split":
	default:
		return fmt.Errorf("mapping.relationship_convention must be \"single\" or \"split\"")
	}
	if c.NATS.Subject != "" && c.NATS.URL == "" {
		return fmt.Errorf("nats.url is required when nats.subject is set")
	}
	return nil
}

// Convention returns the mapper convention selected by the configuration.
func (c *Config) Convention() mapper.RelationshipConvention {
	if c.Mapping.RelationshipConvention == "split" {
		return mapper.ConventionSplit
	}
	return mapper.ConventionSingle
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
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

// SaveToFile saves configuration to a YAML file.
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

// Merge merges another config into this one; other takes precedence for
// non-zero values.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Output.Path != "" {
		c.Output.Path = other.Output.Path
	}
	if other.Mapping.RelationshipConvention != "" {
		c.Mapping.RelationshipConvention = other.Mapping.RelationshipConvention
	}
	if other.Mapping.Dedupe {
		c.Mapping.Dedupe = true
	}
	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}
	if other.NATS.Subject != "" {
		c.NATS.Subject = other.NATS.Subject
	}
}
