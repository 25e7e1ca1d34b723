// Package cache implements the short-lived JSON cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"farmkitchen/config"
	"farmkitchen/internal/domain/lifecycle"
	"farmkitchen/internal/domain/service"
	"farmkitchen/internal/errors"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

type redisCache struct {
	client *redis.Client
}

// noopCache is used when Redis is not configured: every read misses and
// writes are discarded.
type noopCache struct{}

func (noopCache) GetJSON(_ context.Context, _ string, _ any) (bool, error) {
	return false, nil
}

func (noopCache) SetJSON(_ context.Context, _ string, _ any, _ time.Duration) error {
	return nil
}

// Params holds dependencies for the cache, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the JSON cache. Without Redis configuration it degrades to a
// no-op cache so aggregations are simply recomputed on every request.
func New(params Params) (service.Cache, error) {
	cfg := params.Config.Redis
	if cfg == nil {
		params.Logger.Info("Redis not configured, using no-op cache")

		return noopCache{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return &redisCache{client: client}, nil
}

// GetJSON unmarshals the cached value for key into dest, reporting whether
// the key was present.
func (c *redisCache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to get cached value")
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, errors.Wrap(err, "failed to unmarshal cached value")
	}

	return true, nil
}

// SetJSON marshals value and stores it under key for the given TTL.
func (c *redisCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "failed to marshal value for cache")
	}

	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to set cached value")
	}

	return nil
}
