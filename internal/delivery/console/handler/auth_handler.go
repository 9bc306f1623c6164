package handler

import (
	"log/slog"
	"net/http"

	"adminpanel/internal/delivery/console/middleware"
	"adminpanel/internal/delivery/console/view"
	domainerrors "adminpanel/internal/domain/errors"
	"adminpanel/internal/usecase"
	"adminpanel/internal/usecase/form"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type AuthHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Flasher   *view.Flasher
	Logger    *slog.Logger
}

// AuthHandler serves sign-in, sign-out and the password change page.
type AuthHandler struct {
	sessionUC usecase.SessionUsecase
	pages     pages
}

func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		sessionUC: params.SessionUC,
		pages:     pages{flasher: params.Flasher, logger: params.Logger},
	}
}

// LoginData is the data of the login page.
type LoginData struct {
	Form form.Login
	Next string
}

func (h *AuthHandler) LoginPage(c echo.Context) error {
	return h.pages.render(c, http.StatusOK, "login", &view.Page{
		Title: "Sign in",
		Data:  LoginData{Next: middleware.SafeNext(c.QueryParam("next"))},
	})
}

// Login signs the operator in. A rejected login never touches the current
// session, so its 401 is shown on the form rather than handled as a
// teardown.
func (h *AuthHandler) Login(c echo.Context) error {
	var input form.Login
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid sign-in form")
	}
	next := middleware.SafeNext(c.FormValue("next"))

	profile, err := h.sessionUC.Login(c.Request().Context(), input)
	if err != nil {
		page := &view.Page{
			Title: "Sign in",
			Data:  LoginData{Form: form.Login{PhoneNumber: input.PhoneNumber}, Next: next},
		}

		var validationErr *domainerrors.ValidationError
		if errors.As(err, &validationErr) {
			page.Errors = validationErr.Fields

			return h.pages.render(c, http.StatusUnprocessableEntity, "login", page)
		}

		page.Alert = domainerrors.UserMessage(err, "Sign in failed, check your phone number and password")

		return h.pages.render(c, http.StatusUnauthorized, "login", page)
	}

	return h.pages.redirect(c, next, view.FlashSuccess, "Welcome, "+profile.FullName+"!")
}

func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessionUC.Logout(c.Request().Context())

	return h.pages.redirect(c, middleware.LoginPath, view.FlashSuccess, "Signed out")
}

func (h *AuthHandler) PasswordPage(c echo.Context) error {
	return h.pages.render(c, http.StatusOK, "password", &view.Page{Title: "Change password"})
}

func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var input form.ChangePassword
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid password form")
	}

	if err := h.sessionUC.ChangePassword(c.Request().Context(), input); err != nil {
		return h.pages.formFailure(c, err, "password", &view.Page{Title: "Change password"}, "Failed to change password")
	}

	return h.pages.redirect(c, middleware.DashboardPath, view.FlashSuccess, "Password changed")
}

// Health reports liveness and the session state.
func (h *AuthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"session": h.sessionUC.Current().State.String(),
	})
}
