package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Container.BaseURI != "http://example.com/container" {
		t.Errorf("expected default base URI http://example.com/container, got %s", cfg.Container.BaseURI)
	}
	if cfg.Container.OntologyDir != "local_ontologies" {
		t.Errorf("expected default ontology dir local_ontologies, got %s", cfg.Container.OntologyDir)
	}
	if cfg.Import.AnchorPolicy != "endpoint" {
		t.Errorf("expected default anchor policy endpoint, got %s", cfg.Import.AnchorPolicy)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing base URI",
			modify:  func(c *Config) { c.Container.BaseURI = "" },
			wantErr: true,
		},
		{
			name:    "first anchor policy",
			modify:  func(c *Config) { c.Import.AnchorPolicy = "first" },
			wantErr: false,
		},
		{
			name:    "unknown anchor policy",
			modify:  func(c *Config) { c.Import.AnchorPolicy = "nearest" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temp file with config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
container:
  base_uri: "http://acme.example/projects/42"
  publisher: "Acme Engineering"
import:
  anchor_policy: first
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Container.BaseURI != "http://acme.example/projects/42" {
		t.Errorf("expected base URI http://acme.example/projects/42, got %s", cfg.Container.BaseURI)
	}
	if cfg.Container.Publisher != "Acme Engineering" {
		t.Errorf("expected publisher Acme Engineering, got %s", cfg.Container.Publisher)
	}
	// OntologyDir should keep its default since the file didn't set it
	if cfg.Container.OntologyDir != "local_ontologies" {
		t.Errorf("expected ontology dir to remain default, got %s", cfg.Container.OntologyDir)
	}
	if cfg.Import.AnchorPolicy != "first" {
		t.Errorf("expected anchor policy first, got %s", cfg.Import.AnchorPolicy)
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	override := &Config{
		Container: ContainerConfig{
			Publisher: "Override Corp",
		},
	}

	base.Merge(override)

	if base.Container.Publisher != "Override Corp" {
		t.Errorf("expected publisher Override Corp, got %s", base.Container.Publisher)
	}
	// BaseURI should remain from base since override didn't set it
	if base.Container.BaseURI != "http://example.com/container" {
		t.Errorf("expected base URI to remain default, got %s", base.Container.BaseURI)
	}
	if base.Import.AnchorPolicy != "endpoint" {
		t.Errorf("expected anchor policy to remain default, got %s", base.Import.AnchorPolicy)
	}
}

func TestConfigSaveToFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := DefaultConfig()
	cfg.Container.Publisher = "Saved Corp"

	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	// Verify file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}

	// Load and verify
	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Container.Publisher != "Saved Corp" {
		t.Errorf("expected publisher Saved Corp, got %s", loaded.Container.Publisher)
	}
}
