// Package cache provides CandidateCache implementations backed by Redis or process memory.
package cache

import (
	"context"
	"log/slog"
	"time"

	"lostfound/config"
	"lostfound/internal/domain/lifecycle"
	"lostfound/internal/domain/service"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const memoryCleanupInterval = 5 * time.Minute

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New returns a Redis cache when redis.addr is configured, otherwise an in-process cache.
func New(params Params) (service.CandidateCache, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, using in-memory candidate cache")

		return NewMemoryCache(memoryCleanupInterval), nil
	}

	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = 10
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   3,
		PoolSize:     poolSize,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Connected to Redis", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.Wrap(client.Close(), "failed to close Redis client")
		},
	})

	return NewRedisCache(client), nil
}

// NewRedisCache wraps a redis client. Values are stored as JSON.
func NewRedisCache(client redis.UniversalClient) service.CandidateCache {
	return &redisCache{client: client}
}

// NewMemoryCache creates a process-local cache with its own expiry janitor.
func NewMemoryCache(cleanupInterval time.Duration) service.CandidateCache {
	return &memoryCache{store: gocache.New(gocache.NoExpiration, cleanupInterval)}
}
