// Package handler contains the console page handlers.
package handler

import (
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	deliverycontext "adminpanel/internal/delivery/context"
	"adminpanel/internal/delivery/console/view"
	domainerrors "adminpanel/internal/domain/errors"
	"adminpanel/internal/usecase/form"

	"github.com/gorilla/csrf"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// pages renders templates with the per-request parts of view.Page filled in.
type pages struct {
	flasher *view.Flasher
	logger  *slog.Logger
}

func (p pages) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), p.logger)
}

func (p pages) render(c echo.Context, status int, name string, page *view.Page) error {
	page.Flashes = append(p.flasher.Pop(c), page.Flashes...)
	page.CSRFField = csrf.TemplateField(c.Request())
	if snap, ok := deliverycontext.GetSession(c); ok {
		page.Operator = snap.Profile
	}

	return c.Render(status, name, page)
}

// redirect queues a flash and sends the browser to location.
func (p pages) redirect(c echo.Context, location string, kind view.FlashKind, message string) error {
	p.flasher.Add(c, kind, message)

	return c.Redirect(http.StatusSeeOther, location)
}

// formFailure re-renders a form after a failed submission: validation
// failures mark their fields, API failures show the server message or
// fallback. A rejected credential goes to the error handler instead.
func (p pages) formFailure(c echo.Context, err error, name string, page *view.Page, fallback string) error {
	if isAuthFailure(err) {
		return err
	}

	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		page.Errors = validationErr.Fields
		page.Alert = validationErr.Message()

		return p.render(c, http.StatusUnprocessableEntity, name, page)
	}

	status := http.StatusBadGateway
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		status = appErr.HTTPCode()
	}
	p.log(c).Warn("Form submission failed", slog.String("form", name), slog.Any("error", err))
	page.Alert = domainerrors.UserMessage(err, fallback)

	return p.render(c, status, name, page)
}

// actionFailure reports a failed one-button action as a flash on location.
func (p pages) actionFailure(c echo.Context, err error, location, fallback string) error {
	if isAuthFailure(err) {
		return err
	}

	p.log(c).Warn("Action failed", slog.String("path", c.Request().URL.Path), slog.Any("error", err))

	return p.redirect(c, location, view.FlashError, failureMessage(err, fallback))
}

func isAuthFailure(err error) bool {
	return errors.Is(err, domainerrors.ErrUnauthorized) || errors.Is(err, domainerrors.ErrNotAuthenticated)
}

// failureMessage is UserMessage, except field failures are spelled out
// since there is no form to mark them on.
func failureMessage(err error, fallback string) string {
	var validationErr *domainerrors.ValidationError
	if !errors.As(err, &validationErr) {
		return domainerrors.UserMessage(err, fallback)
	}

	fields := make([]string, 0, len(validationErr.Fields))
	for field := range validationErr.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, validationErr.Fields[field])
	}

	return strings.Join(messages, "; ")
}

// readUploads collects the files of a multipart field. Each file is read up
// to limit+1 bytes so oversize files are still detected downstream.
func readUploads(c echo.Context, field string, limit int64) ([]form.Upload, error) {
	multipartForm, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "parse multipart form")
	}

	var uploads []form.Upload
	for _, header := range multipartForm.File[field] {
		if header.Filename == "" && header.Size == 0 {
			continue
		}

		file, err := header.Open()
		if err != nil {
			return nil, errors.Wrapf(err, "open upload %s", header.Filename)
		}
		data, err := io.ReadAll(io.LimitReader(file, limit+1))
		_ = file.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "read upload %s", header.Filename)
		}

		uploads = append(uploads, form.Upload{Name: header.Filename, Data: data})
	}

	return uploads, nil
}
