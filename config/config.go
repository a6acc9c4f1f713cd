// Package config loads the dtk configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables overriding the file values. The Supabase key in
// particular should come from the environment, not from a file on disk.
const (
	EnvConfig      = "DTK_CONFIG"
	EnvStoreType   = "DTK_STORE_TYPE"
	EnvSupabaseURL = "DTK_SUPABASE_URL"
	EnvSupabaseKey = "DTK_SUPABASE_KEY"
)

// Config is the complete dtk configuration.
type Config struct {
	Store    StoreConfig    `yaml:"store"`
	Currency CurrencyConfig `yaml:"currency"`
	Gemini   GeminiConfig   `yaml:"gemini"`
}

// StoreConfig selects and parameterizes the ledger store backend.
type StoreConfig struct {
	Type string `yaml:"type"` // "jsonl", "sqlite" or "supabase"
	Path string `yaml:"path,omitempty"`

	SupabaseURL string `yaml:"supabase_url,omitempty"`
	SupabaseKey string `yaml:"supabase_key,omitempty"`
}

// CurrencyConfig names the fixed currency pair: the foreign unit being
// traded and the local unit it is traded against.
type CurrencyConfig struct {
	Foreign string `yaml:"foreign"`
	Local   string `yaml:"local"`
}

// GeminiConfig parameterizes the insight generator.
type GeminiConfig struct {
	Model string `yaml:"model,omitempty"`
}

// Default returns the configuration used when no file exists: a JSONL
// ledger next to the user's home, trading USD against BDT.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		Store:    StoreConfig{Type: "jsonl", Path: filepath.Join(home, ".dtk", "ledger.jsonl")},
		Currency: CurrencyConfig{Foreign: "USD", Local: "BDT"},
		Gemini:   GeminiConfig{Model: "gemini-2.5-flash"},
	}
}

// DefaultPath returns the config file location: $DTK_CONFIG if set, else
// ~/.dtk/config.yaml.
func DefaultPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".dtk", "config.yaml")
}

// Load reads the configuration from path, falling back to defaults when the
// file does not exist, and applies environment overrides last.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// no file is fine, defaults apply
	case err != nil:
		return nil, fmt.Errorf("read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
	}

	if v := os.Getenv(EnvStoreType); v != "" {
		cfg.Store.Type = v
	}
	if v := os.Getenv(EnvSupabaseURL); v != "" {
		cfg.Store.SupabaseURL = v
	}
	if v := os.Getenv(EnvSupabaseKey); v != "" {
		cfg.Store.SupabaseKey = v
	}

	if cfg.Currency.Foreign == "" || cfg.Currency.Local == "" {
		return nil, fmt.Errorf("config %q: currency pair must name both foreign and local units", path)
	}
	return cfg, nil
}
