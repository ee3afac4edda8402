package main

import (
	"context"
	"log/slog"
	"os"

	"socialgate/config"
	"socialgate/internal/delivery"
	deliveryhttp "socialgate/internal/delivery/http"
	"socialgate/internal/delivery/http/router/handler"
	"socialgate/internal/delivery/middleware"
	"socialgate/internal/domain/service"
	"socialgate/internal/infra/directory"
	"socialgate/internal/infra/firebase"
	"socialgate/internal/infra/identity"
	logs "socialgate/internal/infra/log"
	"socialgate/internal/infra/persistence/postgres"
	"socialgate/internal/infra/provider"
	"socialgate/internal/infra/pubsub"
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
		firebase.NewApp,
		firebase.NewAuthClient,
		firebase.NewDatabaseClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		identity.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		directory.Module,
		pubsub.Module,
		fx.Provide(
			fx.Annotate(
				provider.NewRegistryFromConfig,
				fx.As(new(service.AdapterRegistry)),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLoginService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewLoginHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				deliveryhttp.NewServer,
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
