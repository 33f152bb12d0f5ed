package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scapelab/gear-api/internal/config"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:6379", cfg.Redis.Address)
	assert.NotEmpty(t, cfg.Catalogue.ItemsURL)
	assert.Equal(t, 21600, cfg.Catalogue.CacheTTLSeconds)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
redis:
  address: redis.internal:6380
  pool_size: 50
catalogue:
  items_url: https://feeds.internal/items.json
  cache_ttl_seconds: 3600
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "redis.internal:6380", cfg.Redis.Address)
	assert.Equal(t, 50, cfg.Redis.PoolSize)
	assert.Equal(t, "https://feeds.internal/items.json", cfg.Catalogue.ItemsURL)
	assert.Equal(t, 3600, cfg.Catalogue.CacheTTLSeconds)

	// Unset fields keep their defaults
	assert.Equal(t, 3, cfg.Redis.MaxRetries)
	assert.NotEmpty(t, cfg.Catalogue.PricesURL)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("redis: [not a map"), 0o600))

	_, err := config.Load(path)
	assert.Error(t, err)
}
