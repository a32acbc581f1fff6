package main

import (
	"context"
	"log/slog"
	"os"

	"wayfare/config"
	"wayfare/internal/delivery"
	"wayfare/internal/delivery/http"
	"wayfare/internal/delivery/http/middleware"
	"wayfare/internal/delivery/http/router/handler"
	"wayfare/internal/infra/amap"
	"wayfare/internal/infra/auth"
	logs "wayfare/internal/infra/log"
	"wayfare/internal/infra/persistence/postgres"
	"wayfare/internal/usecase/impl"

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
		newAmapClient,
	)
}

// newAmapClient creates the shared Amap transport from the loaded config
func newAmapClient(cfg *config.Config, logger *slog.Logger) *amap.Client {
	return amap.NewClient(cfg.Amap, logger)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewFavoriteRepository,
			postgres.NewRouteRecordRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			amap.NewGeocoder,
			amap.NewPlaceSearcher,
			amap.NewRouteProvider,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTripService,
			impl.NewPlaceService,
			impl.NewFavoriteService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewTripHandler,
			handler.NewPlaceHandler,
			handler.NewFavoriteHandler,
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
