// Package pubsub hands push events from the API to the push worker, through Google Pub/Sub
// in production or a direct HTTP call in development.
package pubsub

import (
	"context"
	"log/slog"

	"lostfound/config"
	"lostfound/internal/domain/constants"
	"lostfound/internal/domain/service"
	"lostfound/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher keeps notifications in-app only.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishPushEvent(ctx context.Context, event *service.PushEvent) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Push disabled, notification stays in-app only",
		slog.String("notification_id", event.NotificationID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// instrumentedPublisher counts publish outcomes per provider.
type instrumentedPublisher struct {
	service.EventPublisher

	provider string
	metrics  *metrics.Metrics
}

func (p *instrumentedPublisher) PublishPushEvent(ctx context.Context, event *service.PushEvent) error {
	err := p.EventPublisher.PublishPushEvent(ctx, event)
	p.metrics.ObservePublish(p.provider, err)

	return err
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc      fx.Lifecycle
	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// NewEventPublisher picks the publisher for pubsub.provider: empty disables push, otherwise local or google.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, notifications stay in-app only")

		return &noopPublisher{logger: logger}, nil
	}

	publisher, err := newProviderPublisher(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher", slog.String("provider", cfg.Provider))

			return publisher.Close()
		},
	})

	return &instrumentedPublisher{
		EventPublisher: publisher,
		provider:       cfg.Provider,
		metrics:        params.Metrics,
	}, nil
}

func newProviderPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("project ID and topic ID are required for google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}
