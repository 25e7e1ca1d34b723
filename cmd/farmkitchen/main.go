package main

import (
	"context"
	"log/slog"
	"os"

	"farmkitchen/config"
	"farmkitchen/internal/delivery"
	"farmkitchen/internal/delivery/http"
	"farmkitchen/internal/delivery/http/middleware"
	"farmkitchen/internal/delivery/http/router/handler"
	"farmkitchen/internal/infra/advisor"
	"farmkitchen/internal/infra/auth"
	"farmkitchen/internal/infra/cache"
	logs "farmkitchen/internal/infra/log"
	"farmkitchen/internal/infra/payment"
	"farmkitchen/internal/infra/persistence/postgres"
	"farmkitchen/internal/infra/pubsub"
	"farmkitchen/internal/infra/weather"
	"farmkitchen/internal/usecase/impl"

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
			postgres.NewUserRepository,
			postgres.NewProductRepository,
			postgres.NewCartRepository,
			postgres.NewOrderRepository,
			postgres.NewReviewRepository,
			postgres.NewMessageRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewFirebaseVerifier,
			payment.NewRazorpayGateway,
			weather.NewOpenWeatherProvider,
			advisor.NewOpenAIAdvisor,
			cache.New,
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
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewCheckoutService,
			impl.NewReviewService,
			impl.NewMessageService,
			impl.NewAdminService,
			impl.NewAdvisoryService,
			impl.NewWeatherService,
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
			handler.NewHealthHandler,
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewProductHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewPaymentHandler,
			handler.NewReviewHandler,
			handler.NewAdminHandler,
			handler.NewAIHandler,
			handler.NewChatHandler,
			handler.NewWeatherHandler,
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
