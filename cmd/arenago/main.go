package main

import (
	"context"
	"log/slog"
	"os"

	"arenago/config"
	"arenago/internal/delivery"
	"arenago/internal/delivery/http"
	"arenago/internal/delivery/http/middleware"
	"arenago/internal/delivery/http/router/handler"
	"arenago/internal/infra/auth"
	"arenago/internal/infra/geocode"
	logs "arenago/internal/infra/log"
	"arenago/internal/infra/persistence/postgres"
	"arenago/internal/infra/pubsub"
	"arenago/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewProfileRepository,
			postgres.NewCenterRepository,
			postgres.NewFieldRepository,
			postgres.NewAmenityRepository,
			postgres.NewSportRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			geocode.NewNominatimGeocoder,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewAuthService,
			impl.NewRegistrationService,
			impl.NewReviewService,
			impl.NewProfileService,
			impl.NewFieldService,
			impl.NewAmenityService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCenterHandler,
			handler.NewAdminHandler,
			handler.NewProfileHandler,
			handler.NewFieldHandler,
			handler.NewAmenityHandler,
			handler.NewNotificationHandler,
			handler.NewDevHandler,
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
