package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// DirName is the per-project settings directory.
const DirName = ".syndicate"

// Config represents the flat game configuration.
// Values come from defaults, then .syndicate/config.json, then SYNDICATE_* env vars.
// A zero Seed draws a random seed; Tick is the simulated seconds per update.
type Config struct {
	Version           string  `json:"version"`
	Seed              int64   `json:"seed,omitempty"               env:"SYNDICATE_SEED"`
	DBPath            string  `json:"db_path,omitempty"            env:"SYNDICATE_DB_PATH"`
	LogLevel          string  `json:"log_level,omitempty"          env:"SYNDICATE_LOG_LEVEL"`
	AutoResolve       bool    `json:"auto_resolve"                 env:"SYNDICATE_AUTO_RESOLVE"`
	PoolSize          int     `json:"pool_size,omitempty"          env:"SYNDICATE_POOL_SIZE"`
	Tick              float64 `json:"tick,omitempty"               env:"SYNDICATE_TICK"`
	StartingFunds     float64 `json:"starting_funds,omitempty"     env:"SYNDICATE_STARTING_FUNDS"`
	SafehouseCapacity int     `json:"safehouse_capacity,omitempty" env:"SYNDICATE_SAFEHOUSE_CAPACITY"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version:           "1",
		DBPath:            filepath.Join(DirName, "syndicate.db"),
		LogLevel:          "info",
		AutoResolve:       true,
		PoolSize:          6,
		Tick:              5,
		StartingFunds:     5000,
		SafehouseCapacity: 4,
	}
}

// LoadConfig reads .syndicate/config.json from the specified directory over the
// defaults and applies environment overrides. A missing file is not an error.
func LoadConfig(dir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(dir, DirName, "config.json")
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env overrides: %w", err)
	}

	return cfg, cfg.Validate()
}

// SaveConfig writes config.json to directory.
func SaveConfig(dir string, cfg *Config) error {
	settingsDir := filepath.Join(dir, DirName)
	if err := os.MkdirAll(settingsDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s dir: %w", DirName, err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(settingsDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate rejects settings the engine cannot run with.
func (c *Config) Validate() error {
	if c.PoolSize < 1 {
		return fmt.Errorf("pool_size must be at least 1, got %d", c.PoolSize)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("tick must be positive, got %v", c.Tick)
	}
	if c.SafehouseCapacity < 0 {
		return fmt.Errorf("safehouse_capacity must not be negative, got %d", c.SafehouseCapacity)
	}
	return nil
}
