package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Supported backend engines.
const (
	EngineGoGit = "gogit"
	EngineCLI   = "cli"
)

// Config is the root configuration structure.
type Config struct {
	Engine   string         `json:"engine"` // "gogit" or "cli"
	Status   StatusConfig   `json:"status"`
	Checkout CheckoutConfig `json:"checkout"`
	Pager    bool           `json:"pager"`
}

// StatusConfig bounds the context window status prints around the
// current slide.
type StatusConfig struct {
	Before int `json:"before"`
	After  int `json:"after"`
}

// CheckoutConfig holds working-tree handling options.
type CheckoutConfig struct {
	// StashBeforeCheckout stashes uncommitted changes before navigating
	// instead of letting the checkout fail mid-talk.
	StashBeforeCheckout bool `json:"stashBeforeCheckout"`
	// AllowDirtyStart lets start run over uncommitted changes.
	AllowDirtyStart bool `json:"allowDirtyStart"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineGoGit,
		Status: StatusConfig{
			Before: 2,
			After:  3,
		},
		Checkout: CheckoutConfig{
			StashBeforeCheckout: true,
			AllowDirtyStart:     false,
		},
		Pager: true,
	}
}

// Validate checks option values.
func (c *Config) Validate() error {
	switch c.Engine {
	case EngineGoGit, EngineCLI:
	default:
		return fmt.Errorf("unknown engine %q (expected %q or %q)", c.Engine, EngineGoGit, EngineCLI)
	}
	if c.Status.Before < 0 || c.Status.After < 0 {
		return fmt.Errorf("status window must not be negative")
	}
	return nil
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{".git-slides.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".git-slides.json"))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, ".git-slides.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
