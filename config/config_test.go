package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsRadiiAndFanout(t *testing.T) {
	cfg := &Config{}

	cfg.applyDefaults()

	require.NotNil(t, cfg.Proximity)
	assert.Equal(t, 10.0, cfg.Proximity.NotifyRadiusKm)
	assert.Equal(t, 5.0, cfg.Proximity.LostListingRadiusKm)
	assert.Equal(t, 10.0, cfg.Proximity.FoundListingRadiusKm)
	assert.Equal(t, 20, cfg.Proximity.PageSize)

	require.NotNil(t, cfg.Fanout)
	assert.Equal(t, 50, cfg.Fanout.Concurrency)
	assert.Equal(t, 3*time.Second, cfg.Fanout.Timeout)
	assert.Equal(t, "/posts/", cfg.Fanout.LinkPrefix)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Proximity: &ProximityConfig{NotifyRadiusKm: 25, PageSize: 50},
		Fanout:    &FanoutConfig{Concurrency: 80, Timeout: time.Second},
		Redis:     &RedisConfig{Addr: "localhost:6379"},
	}

	cfg.applyDefaults()

	assert.Equal(t, 25.0, cfg.Proximity.NotifyRadiusKm)
	assert.Equal(t, 5.0, cfg.Proximity.LostListingRadiusKm)
	assert.Equal(t, 50, cfg.Proximity.PageSize)
	assert.Equal(t, 80, cfg.Fanout.Concurrency)
	assert.Equal(t, time.Second, cfg.Fanout.Timeout)
	assert.Equal(t, time.Minute, cfg.Redis.TTL)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-0", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
}
