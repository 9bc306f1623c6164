package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "adminpanel/internal/delivery/context"
	"adminpanel/internal/delivery/console/view"
	"adminpanel/internal/domain/entity"
	"adminpanel/internal/usecase"
	"adminpanel/internal/usecase/form"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Flasher *view.Flasher
	Logger  *slog.Logger
}

type AdminHandler struct {
	adminUC usecase.AdminUsecase
	pages   pages
}

func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		pages:   pages{flasher: params.Flasher, logger: params.Logger},
	}
}

// AdminListData is the data of the admin list page.
type AdminListData struct {
	Admins []entity.Admin
}

// AdminFormData is the data of the admin form. ID is empty when creating.
type AdminFormData struct {
	ID   string
	Form form.Admin
}

func (h *AdminHandler) List(c echo.Context) error {
	admins, err := h.adminUC.List(c.Request().Context())
	if err != nil {
		return err
	}

	return h.pages.render(c, http.StatusOK, "admins", &view.Page{
		Title: "Admins",
		Nav:   "admins",
		Data:  AdminListData{Admins: admins},
	})
}

func (h *AdminHandler) New(c echo.Context) error {
	return h.pages.render(c, http.StatusOK, "admin_form", formPage(AdminFormData{}))
}

func (h *AdminHandler) Edit(c echo.Context) error {
	id := c.Param("id")

	admin, err := h.adminUC.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return h.pages.render(c, http.StatusOK, "admin_form", formPage(AdminFormData{ID: id, Form: form.AdminFrom(admin)}))
}

func (h *AdminHandler) Create(c echo.Context) error {
	return h.submit(c, "")
}

func (h *AdminHandler) Update(c echo.Context) error {
	return h.submit(c, c.Param("id"))
}

func (h *AdminHandler) submit(c echo.Context, id string) error {
	var input form.Admin
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid admin form")
	}

	if _, err := h.adminUC.Submit(c.Request().Context(), id, input); err != nil {
		input.Password = ""

		return h.pages.formFailure(c, err, "admin_form", formPage(AdminFormData{ID: id, Form: input}), "Failed to save admin")
	}

	message := "Admin created"
	if id != "" {
		message = "Admin updated"
	}

	return h.pages.redirect(c, "/admins", view.FlashSuccess, message)
}

func (h *AdminHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if snap, ok := deliverycontext.GetSession(c); ok && snap.Profile != nil && snap.Profile.ID.Hex() == id {
		return h.pages.redirect(c, "/admins", view.FlashError, "You cannot delete your own account")
	}

	if err := h.adminUC.Delete(c.Request().Context(), id); err != nil {
		return h.pages.actionFailure(c, err, "/admins", "Failed to delete admin")
	}

	return h.pages.redirect(c, "/admins", view.FlashSuccess, "Admin deleted")
}

func formPage(data AdminFormData) *view.Page {
	title := "New admin"
	if data.ID != "" {
		title = "Edit admin"
	}

	return &view.Page{Title: title, Nav: "admins", Data: data}
}
