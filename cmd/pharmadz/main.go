package main

import (
	"context"
	"log/slog"
	"os"

	"pharmadz/config"
	"pharmadz/internal/delivery"
	"pharmadz/internal/delivery/http"
	"pharmadz/internal/delivery/http/middleware"
	"pharmadz/internal/delivery/http/router/handler"
	"pharmadz/internal/infra/auth"
	"pharmadz/internal/infra/auth/google"
	"pharmadz/internal/infra/chat"
	logs "pharmadz/internal/infra/log"
	"pharmadz/internal/infra/persistence/postgres"
	"pharmadz/internal/infra/pubsub"
	"pharmadz/internal/usecase/impl"

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
			postgres.RegisterSeed,
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
			postgres.NewPharmacyRepository,
			postgres.NewAccountRepository,
			postgres.NewChatRepository,
			postgres.NewPrescriptionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewOAuthService,
			google.NewAuthService,
			chat.NewOpenAIService,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPharmacyService,
			impl.NewChatService,
			impl.NewAuthService,
			impl.NewPrescriptionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPharmacyHandler,
			handler.NewChatHandler,
			handler.NewPrescriptionHandler,
			handler.NewAuthHandler,
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
