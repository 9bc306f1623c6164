// Package console serves the operator web console.
package console

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"adminpanel/config"
	"adminpanel/internal/delivery"
	consolemiddleware "adminpanel/internal/delivery/console/middleware"
	"adminpanel/internal/delivery/console/router"
	"adminpanel/internal/delivery/console/view"
	"adminpanel/internal/delivery/middleware"
	"adminpanel/internal/domain/lifecycle"
	"adminpanel/internal/infra/validator"

	"github.com/gorilla/csrf"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type consoleServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the console server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc              fx.Lifecycle
	Cfg             *config.Config
	Logger          *slog.Logger
	Renderer        *view.Renderer
	Validator       *validator.Validator
	ErrorMiddleware *consolemiddleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	csrfKey, err := view.DecodeKey(params.Cfg.Console.CSRFKey)
	if err != nil {
		return nil, errors.Wrap(err, "console csrf key")
	}

	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	// 1. Recover middleware first (to catch panics early)
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	echoServer.Use(requestIDMiddleware.Process)

	// 3. Logger middleware
	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	echoServer.Use(loggerMiddleware.Handle)

	// 4. Request body size limit, sized for image uploads
	echoServer.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	// 5. CSRF tokens on every form post
	echoServer.Use(echo.WrapMiddleware(csrf.Protect(csrfKey,
		csrf.Secure(params.Cfg.Console.CookieSecure),
		csrf.Path("/"),
		csrf.FieldName("csrf_token"),
	)))

	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError
	echoServer.Validator = params.Validator
	echoServer.Renderer = params.Renderer

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	srv := &consoleServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *consoleServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort(s.cfg.HTTP.Host, strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting console HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *consoleServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down console HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
