// Package config loads the gear-api configuration from a YAML file
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the gear API.
type Config struct {
	Redis     RedisConfig     `yaml:"redis"`
	Catalogue CatalogueConfig `yaml:"catalogue"`
}

// RedisConfig holds Redis connection parameters.
type RedisConfig struct {
	Address            string `yaml:"address"`
	PoolSize           int    `yaml:"pool_size"`
	MinIdleConns       int    `yaml:"min_idle_conns"`
	ConnMaxIdleSeconds int    `yaml:"conn_max_idle_seconds"` // seconds
	MaxRetries         int    `yaml:"max_retries"`
	UseTLS             bool   `yaml:"use_tls"`
}

// CatalogueConfig holds the item and price feed endpoints.
type CatalogueConfig struct {
	ItemsURL           string `yaml:"items_url"`
	PricesURL          string `yaml:"prices_url"`
	HTTPTimeoutSeconds int    `yaml:"http_timeout_seconds"` // seconds
	CacheTTLSeconds    int    `yaml:"cache_ttl_seconds"`    // seconds
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Redis: RedisConfig{
			Address:            "127.0.0.1:6379",
			PoolSize:           10,
			MinIdleConns:       2,
			ConnMaxIdleSeconds: 300,
			MaxRetries:         3,
		},
		Catalogue: CatalogueConfig{
			ItemsURL:           "https://www.osrsbox.com/osrsbox-db/items-complete.json",
			PricesURL:          "https://prices.runescape.wiki/api/v1/osrs/latest",
			HTTPTimeoutSeconds: 30,
			CacheTTLSeconds:    21600,
		},
	}
}

// Load loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
