package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultConfigPath is where project configuration is looked up.
const defaultConfigPath = "docref.yaml"

// Config holds per-project settings. All fields are optional; flags
// override configured values.
type Config struct {
	SiteTitle  string `yaml:"siteTitle"`
	ContentDir string `yaml:"contentDir"`
	OutputDir  string `yaml:"outputDir"`
	BaseURL    string `yaml:"baseURL"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		SiteTitle:  "Documentation",
		ContentDir: "content",
		OutputDir:  "site",
	}
}

// LoadConfig reads a YAML project config from path. A missing file is not
// an error; defaults are returned.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.SiteTitle == "" {
		cfg.SiteTitle = "Documentation"
	}
	if cfg.ContentDir == "" {
		cfg.ContentDir = "content"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "site"
	}

	return cfg, nil
}
