package main

import (
	"context"
	"log/slog"
	"os"

	"socialgate/config"
	"socialgate/internal/delivery"
	"socialgate/internal/delivery/worker"
	"socialgate/internal/delivery/worker/handler"
	"socialgate/internal/domain/service"
	"socialgate/internal/infra/firebase"
	"socialgate/internal/infra/identity"
	logs "socialgate/internal/infra/log"
	"socialgate/internal/infra/media"
	"socialgate/internal/infra/notification"
	"socialgate/internal/usecase"
	"socialgate/internal/usecase/impl"

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
		// Expose push templating config for the push service
		func(cfg *config.Config) *config.PushConfig {
			return cfg.Push
		},
		logs.New,
		context.Background,
		firebase.NewApp,
		firebase.NewDatabaseClient,
		firebase.NewMessagingClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			identity.NewFirebaseDeviceTokens,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		media.Module,
		fx.Provide(
			notification.NewFirebaseGateway,
		),
	)
}

// newThumbnailService wires the scratch directory from config
func newThumbnailService(
	storage service.ObjectStorage,
	converter service.ImageConverter,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ThumbnailUsecase {
	tempDir := ""
	if cfg.Media != nil {
		tempDir = cfg.Media.TempDir
	}

	return impl.NewThumbnailService(storage, converter, tempDir, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newThumbnailService,
			impl.NewPushService,
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
