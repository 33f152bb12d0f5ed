package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/scapelab/gear-api/internal/clients/external"
	"github.com/scapelab/gear-api/internal/config"
	geareng "github.com/scapelab/gear-api/internal/engine/gear"
	"github.com/scapelab/gear-api/internal/orchestrators/gear"
	"github.com/scapelab/gear-api/internal/pkg/clock"
	"github.com/scapelab/gear-api/internal/pkg/idgen"
	redisclient "github.com/scapelab/gear-api/internal/redis"
	"github.com/scapelab/gear-api/internal/repositories/snapshot"
)

// buildService wires the full dependency graph from the config file
func buildService() (gear.Service, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	client, err := redisclient.NewClient(cfg.Redis.Address, &redisclient.Options{
		PoolSize:        cfg.Redis.PoolSize,
		MinIdleConns:    cfg.Redis.MinIdleConns,
		ConnMaxIdleTime: time.Duration(cfg.Redis.ConnMaxIdleSeconds) * time.Second,
		MaxRetries:      cfg.Redis.MaxRetries,
		UseTLS:          cfg.Redis.UseTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	repo, err := snapshot.NewRedis(&snapshot.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}

	catalogueClient, err := external.New(&external.Config{
		ItemsURL:    cfg.Catalogue.ItemsURL,
		PricesURL:   cfg.Catalogue.PricesURL,
		HTTPTimeout: time.Duration(cfg.Catalogue.HTTPTimeoutSeconds) * time.Second,
		CacheTTL:    time.Duration(cfg.Catalogue.CacheTTLSeconds) * time.Second,
	})
	if err != nil {
		return nil, err
	}

	return gear.NewOrchestrator(&gear.Config{
		Engine:          geareng.New(),
		SnapshotRepo:    repo,
		CatalogueClient: catalogueClient,
		IDGenerator:     idgen.NewUUID("snap"),
		Clock:           clock.New(),
	})
}

// readRequest decodes a JSON request file, or stdin when path is "-"
func readRequest(path string, v interface{}) error {
	var data []byte
	var err error

	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("reading request %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing request %s: %w", path, err)
	}
	return nil
}

// printResponse writes indented JSON to stdout
func printResponse(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
