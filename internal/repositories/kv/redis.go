package kv

import (
	"context"
	stderrors "errors"

	"github.com/KirkDiggler/npc-tracker/internal/errors"
	redisclient "github.com/KirkDiggler/npc-tracker/internal/redis"
)

type redisRepository struct {
	client    redisclient.Client
	keyPrefix string
}

// RedisConfig contains configuration for the Redis store.
type RedisConfig struct {
	Client redisclient.Client
	// KeyPrefix is prepended to every key, e.g. "npc:".
	KeyPrefix string
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

// NewRedis creates a Redis-backed store
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client:    cfg.Client,
		keyPrefix: cfg.KeyPrefix,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.InvalidArgument(errKeyEmpty)
	}

	value, err := r.client.Get(ctx, r.keyPrefix+key).Result()
	if stderrors.Is(err, redisclient.Nil) {
		return "", errors.NotFoundf("key %s not found", key).WithMeta("key", key)
	}
	if err != nil {
		return "", errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get %s", key)
	}

	return value, nil
}

func (r *redisRepository) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.InvalidArgument(errKeyEmpty)
	}

	// No expiration: the library lives until overwritten.
	if err := r.client.Set(ctx, r.keyPrefix+key, value, 0).Err(); err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to set %s", key)
	}

	return nil
}

func (r *redisRepository) Close() error {
	return r.client.Close()
}
