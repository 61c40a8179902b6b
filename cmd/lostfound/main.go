package main

import (
	"context"
	"log/slog"
	"os"

	"lostfound/config"
	"lostfound/internal/delivery"
	"lostfound/internal/delivery/api"
	"lostfound/internal/delivery/api/middleware"
	"lostfound/internal/delivery/api/router/handler"
	"lostfound/internal/domain/service"
	"lostfound/internal/fanout"
	"lostfound/internal/infra/auth"
	"lostfound/internal/infra/cache"
	logs "lostfound/internal/infra/log"
	"lostfound/internal/infra/metrics"
	"lostfound/internal/infra/notification"
	"lostfound/internal/infra/persistence/mongo"
	"lostfound/internal/infra/persistence/postgres"
	"lostfound/internal/infra/pubsub"
	"lostfound/internal/infra/qrcode"
	"lostfound/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
		postgres.New,
		mongo.New,
		cache.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongo.NewPostRepository,
			mongo.NewUserRepository,
			postgres.NewDeviceRepository,
			postgres.NewNotificationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			notification.NewInAppSink,
			newFanoutPolicy,
			newQRCodeService,
		),
	)
}

// newFanoutPolicy builds the dispatch policy from the fanout section.
func newFanoutPolicy(cfg *config.Config) *fanout.Policy {
	return fanout.NewPolicy(fanout.Config{
		Concurrency: cfg.Fanout.Concurrency,
		Timeout:     cfg.Fanout.Timeout,
		LinkPrefix:  cfg.Fanout.LinkPrefix,
	})
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPostService,
			impl.NewUserService,
			impl.NewNotificationService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPostHandler,
			handler.NewUserHandler,
			handler.NewNotificationHandler,
			handler.NewDeviceHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
