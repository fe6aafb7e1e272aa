package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds application configuration.
type Config struct {
	DefaultCountry string `json:"defaultCountry"`
	DataDir        string `json:"dataDir,omitempty"`      // empty = default location
	SessionEmail   string `json:"sessionEmail,omitempty"` // set by crm login
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		DefaultCountry: "India",
	}
}

// Load reads config from the JSON file.
// Creates the file with defaults if it doesn't exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			// Create the config file with defaults
			if saveErr := Save(path, &config); saveErr != nil {
				// Non-fatal: return defaults even if save fails
				return &config, nil
			}
			return &config, nil
		}
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Apply defaults for missing fields
	if config.DefaultCountry == "" {
		config.DefaultCountry = DefaultConfig().DefaultCountry
	}

	return &config, nil
}

// Save writes config to the JSON file.
// Creates the directory if it doesn't exist.
func Save(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultPath returns the default config path: ~/.config/crm/config.json
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "crm", "config.json"), nil
}
