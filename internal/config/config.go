// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"sync"

	"ratecard/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Engine contains pricing engine defaults
	Engine EngineConfig `json:"engine"`

	// Server contains HTTP server settings
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// EngineConfig contains the named defaults applied to optional
// brief fields at the engine boundary
type EngineConfig struct {
	// DefaultCurrency is the quote currency when a profile names none
	DefaultCurrency string `json:"default_currency"`

	// SeasonalPricing enables calendar-based demand premiums;
	// individual briefs may still opt out
	SeasonalPricing bool `json:"seasonal_pricing"`

	// DefaultWhitelisting is assumed when a brief names no
	// whitelisting terms
	DefaultWhitelisting string `json:"default_whitelisting"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Version: "1",
		Engine: EngineConfig{
			DefaultCurrency:     "USD",
			SeasonalPricing:     true,
			DefaultWhitelisting: "none",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads configuration from a JSON file, applying defaults for
// any field the file omits.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

var (
	mu      sync.RWMutex
	current = Default()
)

// Get returns the active configuration
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set replaces the active configuration
func Set(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	current = cfg
}
