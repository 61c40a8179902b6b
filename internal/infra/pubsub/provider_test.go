package pubsub

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"lostfound/config"
	"lostfound/internal/domain/constants"
	"lostfound/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func publisherParams(t *testing.T, cfg *config.PubSubConfig) (PublisherParams, *metrics.Metrics) {
	m := metrics.New()

	return PublisherParams{
		Lc:      fxtest.NewLifecycle(t),
		Ctx:     context.Background(),
		Config:  &config.Config{PubSub: cfg},
		Logger:  slog.New(slog.DiscardHandler),
		Metrics: m,
	}, m
}

func TestNewEventPublisher_Disabled(t *testing.T) {
	params, m := publisherParams(t, nil)

	publisher, err := NewEventPublisher(params)
	require.NoError(t, err)
	require.NoError(t, publisher.PublishPushEvent(context.Background(), samplePushEvent()))

	assert.Zero(t, testutil.CollectAndCount(m.PushEventsPublished))
}

func TestNewEventPublisher_LocalIsInstrumented(t *testing.T) {
	status := http.StatusOK
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	}))
	defer srv.Close()

	params, m := publisherParams(t, &config.PubSubConfig{
		Provider:      constants.PubSubProviderLocal,
		LocalEndpoint: srv.URL,
	})

	publisher, err := NewEventPublisher(params)
	require.NoError(t, err)

	require.NoError(t, publisher.PublishPushEvent(context.Background(), samplePushEvent()))
	status = http.StatusServiceUnavailable
	require.Error(t, publisher.PublishPushEvent(context.Background(), samplePushEvent()))

	assert.InDelta(t, 1, testutil.ToFloat64(m.PushEventsPublished.WithLabelValues("local", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.PushEventsPublished.WithLabelValues("local", "error")), 0)
}

func TestNewEventPublisher_RejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.PubSubConfig
	}{
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, _ := publisherParams(t, tt.cfg)

			_, err := NewEventPublisher(params)
			assert.Error(t, err)
		})
	}
}
