// Package config provides configuration loading and management for icddkit.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete icddkit configuration
type Config struct {
	Container ContainerConfig `yaml:"container"`
	Import    ImportConfig    `yaml:"import"`
}

// ContainerConfig configures new container scaffolding
type ContainerConfig struct {
	// BaseURI is the namespace generated entity URIs live under
	BaseURI string `yaml:"base_uri"`
	// Publisher is the name recorded on the container's Party entity
	Publisher string `yaml:"publisher"`
	// OntologyDir is the directory holding local copies of the ISO
	// ontology files (Container.rdf, Linkset.rdf, ExtendedLinkset.rdf)
	OntologyDir string `yaml:"ontology_dir"`
}

// ImportConfig configures the relationship import pass
type ImportConfig struct {
	// AnchorPolicy selects the IFC document sub-element anchors attach to:
	// "endpoint" (default) or "first" (legacy first-registered behavior)
	AnchorPolicy string `yaml:"anchor_policy"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Container: ContainerConfig{
			BaseURI:     "http://example.com/container",
			Publisher:   "",
			OntologyDir: "local_ontologies",
		},
		Import: ImportConfig{
			AnchorPolicy: "endpoint",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Container.BaseURI == "" {
		return fmt.Errorf("container.base_uri is required")
	}
	switch c.Import.AnchorPolicy {
	case "endpoint", "first":
	default:
		return fmt.Errorf("import.anchor_policy must be \"endpoint\" or \"first\", got %q", c.Import.AnchorPolicy)
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

	// Container
	if other.Container.BaseURI != "" {
		c.Container.BaseURI = other.Container.BaseURI
	}
	if other.Container.Publisher != "" {
		c.Container.Publisher = other.Container.Publisher
	}
	if other.Container.OntologyDir != "" {
		c.Container.OntologyDir = other.Container.OntologyDir
	}

	// Import
	if other.Import.AnchorPolicy != "" {
		c.Import.AnchorPolicy = other.Import.AnchorPolicy
	}
}
