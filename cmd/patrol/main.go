package main

import (
	"context"
	"log/slog"
	"os"

	"patrol/config"
	"patrol/internal/delivery"
	"patrol/internal/delivery/api"
	"patrol/internal/delivery/api/middleware"
	"patrol/internal/delivery/api/router/handler"
	"patrol/internal/infra/auth"
	"patrol/internal/infra/clock"
	logs "patrol/internal/infra/log"
	"patrol/internal/infra/media"
	"patrol/internal/infra/persistence/postgres"
	"patrol/internal/infra/pubsub"
	"patrol/internal/infra/qrcode"
	"patrol/internal/infra/storage"
	"patrol/internal/usecase/impl"

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
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
			postgres.NewLocationRepository,
			postgres.NewPatrolLocationRepository,
			postgres.NewCheckpointRepository,
			postgres.NewCheckpointVerificationRepository,
			postgres.NewPhotoRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			clock.NewSystemClock,
			auth.NewJWTVerifier,
			qrcode.NewCheckpointTagService,
			storage.NewBlobStorage,
			media.NewPhotoInspector,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLocationBatchService,
			impl.NewCheckpointService,
			impl.NewPhotoService,
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
			handler.NewLocationHandler,
			handler.NewCheckpointHandler,
			handler.NewPhotoHandler,
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

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
