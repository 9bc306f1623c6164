package handler

import (
	"log/slog"
	"net/http"

	"adminpanel/internal/delivery/console/view"
	"adminpanel/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
	Flasher     *view.Flasher
	Logger      *slog.Logger
}

type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
	pages       pages
}

func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: params.DashboardUC,
		pages:       pages{flasher: params.Flasher, logger: params.Logger},
	}
}

func (h *DashboardHandler) Show(c echo.Context) error {
	summary, err := h.dashboardUC.Summary(c.Request().Context())
	if err != nil {
		return err
	}

	return h.pages.render(c, http.StatusOK, "dashboard", &view.Page{
		Title: "Dashboard",
		Nav:   "dashboard",
		Data:  summary,
	})
}
