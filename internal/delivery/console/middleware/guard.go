// Package middleware holds the console-only middleware: the session route
// guard and the page-rendering error handler.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"adminpanel/config"
	deliverycontext "adminpanel/internal/delivery/context"
	"adminpanel/internal/domain/entity"
	domainerrors "adminpanel/internal/domain/errors"
	"adminpanel/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

type GuardMiddlewareParams struct {
	fx.In

	Session service.SessionReader
	Config  *config.Config
	Logger  *slog.Logger
}

// GuardMiddleware admits console requests according to the session state.
// While a restore is in flight it waits, at most RestoreWait, for the state
// to settle.
type GuardMiddleware struct {
	session service.SessionReader
	wait    time.Duration
	logger  *slog.Logger
}

func NewGuardMiddleware(params GuardMiddlewareParams) *GuardMiddleware {
	return &GuardMiddleware{
		session: params.Session,
		wait:    params.Config.Session.RestoreWait,
		logger:  params.Logger,
	}
}

// RequireSession renders protected pages only for an authenticated
// operator; anyone else is sent to the login page with the original
// location in next.
func (m *GuardMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		snap, err := m.settle(c)
		if err != nil {
			return err
		}

		if !snap.IsAuthenticated() {
			return c.Redirect(http.StatusSeeOther, LoginURL(nextFor(c)))
		}

		deliverycontext.SetSession(c, snap)

		return next(c)
	}
}

// RedirectAuthenticated keeps a signed-in operator away from the login page.
func (m *GuardMiddleware) RedirectAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		snap, err := m.settle(c)
		if err != nil {
			return err
		}

		if snap.IsAuthenticated() {
			return c.Redirect(http.StatusSeeOther, DashboardPath)
		}

		return next(c)
	}
}

func (m *GuardMiddleware) settle(c echo.Context) (entity.SessionSnapshot, error) {
	ctx := c.Request().Context()
	if m.wait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.wait)
		defer cancel()
	}

	snap, err := m.session.Wait(ctx)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
			Warn("Session still loading", slog.Duration("waited", m.wait))

		return snap, domainerrors.ErrSessionLoading
	}

	return snap, nil
}

// LoginURL builds the login location carrying next, when next is a local
// path worth returning to.
func LoginURL(next string) string {
	if next = SafeNext(next); next == DashboardPath {
		return LoginPath
	}

	return LoginPath + "?next=" + url.QueryEscape(next)
}

// SafeNext accepts only local absolute paths, so a crafted next cannot
// redirect off-site.
func SafeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return DashboardPath
	}

	u, err := url.Parse(next)
	if err != nil || u.Host != "" || u.Path == LoginPath || u.Path == "/" {
		return DashboardPath
	}

	return u.RequestURI()
}

// nextFor is where the operator should return after signing in. Only GET
// locations can be replayed.
func nextFor(c echo.Context) string {
	if c.Request().Method != http.MethodGet {
		return DashboardPath
	}

	return c.Request().URL.RequestURI()
}
