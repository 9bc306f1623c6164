package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "adminpanel/internal/delivery/context"
	"adminpanel/internal/delivery/console/view"
	domainerrors "adminpanel/internal/domain/errors"

	"github.com/gorilla/csrf"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type ErrorMiddlewareParams struct {
	fx.In

	Flasher *view.Flasher
	Logger  *slog.Logger
}

// ErrorMiddleware turns handler errors into pages and redirects.
type ErrorMiddleware struct {
	flasher *view.Flasher
	logger  *slog.Logger
}

func NewErrorMiddleware(params ErrorMiddlewareParams) *ErrorMiddleware {
	return &ErrorMiddleware{
		flasher: params.Flasher,
		logger:  params.Logger,
	}
}

// ErrorPage is the data of the error template.
type ErrorPage struct {
	Status  int
	Message string
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. A rejected
// credential sends the operator back to the login page.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if errors.Is(err, domainerrors.ErrUnauthorized) || errors.Is(err, domainerrors.ErrNotAuthenticated) {
		if errors.Is(err, domainerrors.ErrUnauthorized) {
			m.flasher.Add(c, view.FlashError, domainerrors.ErrUnauthorized.Message())
		}
		_ = c.Redirect(http.StatusSeeOther, LoginURL(nextFor(c)))

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPCode()
		message := domainerrors.UserMessage(err, appErr.Message())
		if status >= http.StatusInternalServerError {
			m.log(c).Warn("Request failed", slog.Int("status", status), slog.Any("error", err))
		}
		m.render(c, status, message)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		m.render(c, httpErr.Code, message)

		return
	}

	m.log(c).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
	m.render(c, http.StatusInternalServerError, "Something went wrong, please try again")
}

func (m *ErrorMiddleware) render(c echo.Context, status int, message string) {
	page := &view.Page{
		Title:     http.StatusText(status),
		Flashes:   m.flasher.Pop(c),
		CSRFField: csrf.TemplateField(c.Request()),
		Data:      ErrorPage{Status: status, Message: message},
	}
	if snap, ok := deliverycontext.GetSession(c); ok {
		page.Operator = snap.Profile
	}

	if err := c.Render(status, "error", page); err != nil {
		m.log(c).Error("Failed to render error page", slog.Any("error", err))
		_ = c.String(status, message)
	}
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}
