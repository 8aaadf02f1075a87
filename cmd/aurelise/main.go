package main

import (
	"context"
	"log/slog"

	"aurelise/config"
	"aurelise/internal/delivery"
	"aurelise/internal/delivery/api"
	"aurelise/internal/delivery/api/middleware"
	"aurelise/internal/delivery/api/router/handler"
	"aurelise/internal/infra/auth"
	"aurelise/internal/infra/auth/google"
	logs "aurelise/internal/infra/log"
	"aurelise/internal/infra/payment"
	"aurelise/internal/infra/persistence/postgres"
	"aurelise/internal/infra/pubsub"
	"aurelise/internal/infra/qrcode"
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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewAddressRepository,
			postgres.NewProductRepository,
			postgres.NewCategoryRepository,
			postgres.NewReviewRepository,
			postgres.NewWishlistRepository,
			postgres.NewCartRepository,
			postgres.NewOrderRepository,
			postgres.NewSettingRepository,
			postgres.NewDeviceRepository,
			postgres.NewContentRepository,
			postgres.NewOrderNumberGenerator,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewAuthService,
			qrcode.NewQRCodeServiceFromConfig,
			payment.NewStripeGateway,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewCatalogService,
			impl.NewContentService,
			impl.NewCartService,
			impl.NewPricingService,
			impl.NewCheckoutService,
			impl.NewPaymentService,
			impl.NewOrderAdminService,
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
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewCatalogHandler,
			handler.NewContentHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewPaymentHandler,
			handler.NewAdminHandler,
			handler.NewDeviceHandler,
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

				// Graceful shutdown still runs every OnStop hook.
				if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
				}
			}
		}()
	}
}
