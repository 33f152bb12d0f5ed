package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/scapelab/gear-api/internal/catalogue"
	"github.com/scapelab/gear-api/internal/entities/osrs"
	"github.com/scapelab/gear-api/internal/errors"
	redisclient "github.com/scapelab/gear-api/internal/redis"
)

const (
	snapshotKeyPrefix = "catalogue:snapshot:"
	latestKey         = "catalogue:snapshot:latest"

	errSnapshotNil = "snapshot cannot be nil"
	errVersionGone = "snapshot version %s not found"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis snapshot repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed snapshot repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// snapshotData is the storage structure for a catalogue snapshot.
// This is what gets serialized to Redis
type snapshotData struct {
	Version   string      `json:"version"`
	CreatedAt time.Time   `json:"created_at"`
	Items     []osrs.Item `json:"items"`
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	version := input.Version
	if version == "" {
		resolved, err := r.client.Get(ctx, latestKey).Result()
		if err != nil {
			if err == redis.Nil {
				return nil, errors.NotFound("no catalogue snapshot has been saved yet")
			}
			return nil, errors.Wrap(err, "failed to resolve latest snapshot version")
		}
		version = resolved
	}

	result, err := r.client.Get(ctx, snapshotKeyPrefix+version).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf(errVersionGone, version)
		}
		return nil, errors.Wrapf(err, "failed to get snapshot %s", version)
	}

	var data snapshotData
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal snapshot %s", version)
	}

	return &GetOutput{
		Snapshot: catalogue.New(data.Version, data.CreatedAt, data.Items),
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Snapshot == nil {
		return nil, errors.InvalidArgument(errSnapshotNil)
	}
	version := input.Snapshot.Version()
	if version == "" {
		return nil, errors.InvalidArgument("snapshot version cannot be empty")
	}

	data := snapshotData{
		Version:   version,
		CreatedAt: input.Snapshot.CreatedAt(),
		Items:     input.Snapshot.Items(),
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal snapshot %s", version)
	}

	if err := r.client.Set(ctx, snapshotKeyPrefix+version, jsonData, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save snapshot %s", version)
	}

	if err := r.client.Set(ctx, latestKey, version, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to advance latest pointer to %s", version)
	}

	return &SaveOutput{Version: version}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Version == "" {
		return nil, errors.InvalidArgument("version cannot be empty")
	}

	key := snapshotKeyPrefix + input.Version

	// Check if exists first to return proper error
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to check snapshot existence")
	}

	if exists == 0 {
		return nil, errors.NotFoundf(errVersionGone, input.Version)
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete snapshot %s", input.Version)
	}

	return &DeleteOutput{}, nil
}

// GetKey returns the Redis key for a snapshot version
// Exposed for testing purposes
func GetKey(version string) string {
	return fmt.Sprintf("%s%s", snapshotKeyPrefix, version)
}
