package cache

import (
	"context"
	"encoding/json"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

// memoryCache keeps JSON snapshots so callers never share mutable values with the cache.
type memoryCache struct {
	store *gocache.Cache
}

func (c *memoryCache) Get(_ context.Context, key string, dst any) (bool, error) {
	cached, ok := c.store.Get(key)
	if !ok {
		return false, nil
	}

	raw, ok := cached.([]byte)
	if !ok {
		return false, errors.Errorf("unexpected cached type %T for %s", cached, key)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, errors.Wrapf(err, "decode cached %s", key)
	}

	return true, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}

	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	c.store.Set(key, raw, ttl)

	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		c.store.Delete(key)
	}

	return nil
}
