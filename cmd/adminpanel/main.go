package main

import (
	"context"
	"log/slog"
	"os"

	"adminpanel/config"
	"adminpanel/internal/delivery"
	"adminpanel/internal/delivery/console"
	"adminpanel/internal/delivery/console/handler"
	"adminpanel/internal/delivery/console/middleware"
	"adminpanel/internal/delivery/console/view"
	"adminpanel/internal/domain/service"
	"adminpanel/internal/infra/apiclient"
	"adminpanel/internal/infra/auth"
	logs "adminpanel/internal/infra/log"
	"adminpanel/internal/infra/media"
	"adminpanel/internal/infra/persistence"
	"adminpanel/internal/infra/qrcode"
	"adminpanel/internal/infra/session"
	"adminpanel/internal/infra/validator"
	"adminpanel/internal/usecase"
	"adminpanel/internal/usecase/impl"

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
			startSession,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		fx.Annotate(
			session.NewHolder,
			fx.As(new(service.SessionHolder)),
			fx.As(new(service.SessionReader)),
			fx.As(new(service.TokenSource)),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewCredentialRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				apiclient.New,
				fx.As(new(service.CatalogAPI)),
				fx.As(new(service.AuthAPI)),
				fx.As(new(service.AdminAPI)),
				fx.As(new(service.ProductAPI)),
				fx.As(new(service.OrderAPI)),
				fx.As(new(service.ImageURLResolver)),
			),
			fx.Annotate(
				validator.New,
				fx.As(fx.Self()),
				fx.As(new(service.Validator)),
			),
			auth.NewJWTInspector,
			qrcode.NewQRCodeService,
			newImageInspector,
		),
	)
}

// newImageInspector bounds uploads by the configured image size
func newImageInspector(cfg *config.Config) service.ImageInspector {
	return media.NewInspector(cfg.Upload.MaxImageSize)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewProductService,
			impl.NewOrderService,
			impl.NewAdminService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewGuardMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			view.NewRenderer,
			view.NewFlasher,
			handler.NewAuthHandler,
			handler.NewDashboardHandler,
			handler.NewProductHandler,
			handler.NewOrderHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				console.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startSession subscribes the session to authorization failures and restores
// the persisted credential in the background; pages wait on the restore.
func startSession(lc fx.Lifecycle, api service.CatalogAPI, sessionUC usecase.SessionUsecase, logger *slog.Logger) {
	api.OnUnauthorized(sessionUC.HandleUnauthorized)

	restoreCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				sessionUC.Restore(restoreCtx)
				logger.Info("Session restore finished", slog.String("state", sessionUC.Current().State.String()))
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})
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
