package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type redisCache struct {
	client redis.UniversalClient
}

func (c *redisCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "redis get %s", key)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, errors.Wrapf(err, "decode cached %s", key)
	}

	return true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}

	return errors.Wrapf(c.client.Set(ctx, key, raw, ttl).Err(), "redis set %s", key)
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	return errors.Wrap(c.client.Del(ctx, keys...).Err(), "redis del")
}
