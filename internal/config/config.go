package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level brickbooks.yaml configuration.
type Config struct {
	API      APIConfig     `yaml:"api"`
	Link     LinkConfig    `yaml:"link"`
	Advisor  AdvisorConfig `yaml:"advisor"`
	StateDir string        `yaml:"state_dir"`
}

// APIConfig points at the aggregation service.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
}

// LinkConfig configures the bank-link widget invocation.
type LinkConfig struct {
	ApplicationID string `yaml:"application_id"`
	Environment   string `yaml:"environment"`
	SelectAccount string `yaml:"select_account"`
}

// AdvisorConfig configures the AI summary feature.
type AdvisorConfig struct {
	Model string `yaml:"model"`
}

// Load reads a brickbooks.yaml file from disk.
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

// Default returns a Config with sensible defaults for a new setup.
func Default() *Config {
	stateDir := ".brickbooks"
	if home, err := os.UserHomeDir(); err == nil {
		stateDir = filepath.Join(home, ".brickbooks")
	}
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:8001/api",
		},
		Link: LinkConfig{
			ApplicationID: "app_pj4c5t83p8q0ibrr8k000",
			Environment:   "development",
			SelectAccount: "multiple",
		},
		Advisor: AdvisorConfig{
			Model: "gemini-2.5-flash",
		},
		StateDir: stateDir,
	}
}
