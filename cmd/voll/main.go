package main

import (
	"context"
	"log/slog"
	"os"

	"voll/config"
	"voll/internal/delivery"
	"voll/internal/delivery/http"
	"voll/internal/delivery/http/router/handler"
	"voll/internal/infra/auth"
	logs "voll/internal/infra/log"
	"voll/internal/infra/metrics"
	"voll/internal/infra/persistence/postgres"
	"voll/internal/infra/pubsub"
	"voll/internal/infra/ratelimit"
	"voll/internal/infra/redis"
	"voll/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

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
		redis.NewClient,
		metrics.New,
		fx.Annotate(
			postgres.NewHealthCheck,
			fx.ResultTags(`group:"health_checks"`),
		),
		fx.Annotate(
			redis.NewHealthCheck,
			fx.ResultTags(`group:"health_checks"`),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDoctorRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			ratelimit.NewRateLimiter,
			metrics.NewRegistryMetrics,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDoctorService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDoctorHandler,
			fx.Annotate(
				handler.NewHealthHandler,
				fx.ParamTags(`group:"health_checks"`),
			),
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
				os.Exit(1)
			}
		}()
	}
}
