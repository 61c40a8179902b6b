package service

import (
	"context"
	"time"
)

// CandidateCache is a short-lived read-through cache for candidate lists fed to the proximity engine.
type CandidateCache interface {
	// Get decodes the cached value for key into dst and reports whether it was present.
	Get(ctx context.Context, key string, dst any) (bool, error)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error
}
