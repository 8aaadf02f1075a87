package main

import (
	"context"
	"log/slog"

	"aurelise/config"
	"aurelise/internal/delivery"
	"aurelise/internal/delivery/worker"
	"aurelise/internal/delivery/worker/handler"
	"aurelise/internal/domain/service"
	logs "aurelise/internal/infra/log"
	"aurelise/internal/infra/notification"
	"aurelise/internal/infra/persistence/postgres"
	"aurelise/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewOrderRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newNotificationService,
		),
	)
}

// newNotificationService falls back to logging when Firebase is not configured.
func newNotificationService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		logger.Warn("Firebase not configured, notifications will only be logged")

		return notification.NewLogNotifier(logger), nil
	}

	return notification.NewFirebaseService(ctx, cfg.Firebase)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewSubscriber,
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

				// Graceful shutdown still runs every OnStop hook.
				if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
				}
			}
		}()
	}
}
