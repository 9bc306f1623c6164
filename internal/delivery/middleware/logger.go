package middleware

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"adminpanel/config"
	deliverycontext "adminpanel/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware logs console requests. Successful requests are logged
// only in debug mode; failures and server errors always are.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if strings.HasPrefix(c.Request().URL.Path, "/static/") {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

// logRequest logs request details
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	status := res.Status
	if err != nil {
		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
		}
	}

	logLevel := slog.LevelInfo
	if status >= 400 || err != nil {
		logLevel = slog.LevelWarn
	}
	if status >= 500 {
		logLevel = slog.LevelError
	}
	if logLevel == slog.LevelInfo && !m.debug {
		return
	}

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	if snap, ok := deliverycontext.GetSession(c); ok && snap.Profile != nil {
		fields = append(fields, slog.String("operator", snap.Profile.ID.Hex()))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	m.logger.LogAttrs(context.Background(), logLevel, "HTTP Request", fields...)
}
