package handler

import (
	"log/slog"
	"net/http"

	"adminpanel/internal/delivery/console/view"
	"adminpanel/internal/domain/entity"
	"adminpanel/internal/domain/service"
	"adminpanel/internal/usecase"
	"adminpanel/internal/usecase/form"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	QRCode  service.QRCodeService
	Flasher *view.Flasher
	Logger  *slog.Logger
}

type OrderHandler struct {
	orderUC usecase.OrderUsecase
	qrcode  service.QRCodeService
	pages   pages
}

func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		qrcode:  params.QRCode,
		pages:   pages{flasher: params.Flasher, logger: params.Logger},
	}
}

// OrderListData is the data of the order list page.
type OrderListData struct {
	Orders []entity.Order
	Filter usecase.OrderFilter
}

// OrderDetailData is the data of the order page and its two forms.
type OrderDetailData struct {
	Order      *entity.Order
	StatusForm form.OrderStatus
	CancelForm form.CancelOrder
}

func (h *OrderHandler) List(c echo.Context) error {
	var filter usecase.OrderFilter
	if err := c.Bind(&filter); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid order filter")
	}

	// a slip scanned into the search box opens the order
	if id, err := h.qrcode.ParseOrderQR(filter.Search); err == nil {
		return c.Redirect(http.StatusSeeOther, "/orders/"+id.Hex())
	}

	orders, err := h.orderUC.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return h.pages.render(c, http.StatusOK, "orders", &view.Page{
		Title: "Orders",
		Nav:   "orders",
		Data:  OrderListData{Orders: orders, Filter: filter},
	})
}

func (h *OrderHandler) Show(c echo.Context) error {
	order, err := h.orderUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return h.pages.render(c, http.StatusOK, "order_detail", h.detailPage(OrderDetailData{
		Order:      order,
		StatusForm: form.OrderStatusFrom(order),
	}))
}

// QR serves the slip code of the order as a PNG.
func (h *OrderHandler) QR(c echo.Context) error {
	order, err := h.orderUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	png, err := h.qrcode.GenerateOrderQR(order)
	if err != nil {
		return err
	}

	c.Response().Header().Set("Cache-Control", "private, max-age=300")

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id := c.Param("id")

	var input form.OrderStatus
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid status form")
	}

	ctx := c.Request().Context()
	if _, err := h.orderUC.UpdateStatus(ctx, id, input); err != nil {
		order, getErr := h.orderUC.Get(ctx, id)
		if getErr != nil {
			return getErr
		}

		return h.pages.formFailure(c, err, "order_detail", h.detailPage(OrderDetailData{
			Order:      order,
			StatusForm: input,
		}), "Failed to update order status")
	}

	return h.pages.redirect(c, "/orders/"+id, view.FlashSuccess, "Order status updated")
}

func (h *OrderHandler) Cancel(c echo.Context) error {
	id := c.Param("id")

	var input form.CancelOrder
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid cancel form")
	}

	ctx := c.Request().Context()
	if _, err := h.orderUC.Cancel(ctx, id, input); err != nil {
		order, getErr := h.orderUC.Get(ctx, id)
		if getErr != nil {
			return getErr
		}

		return h.pages.formFailure(c, err, "order_detail", h.detailPage(OrderDetailData{
			Order:      order,
			StatusForm: form.OrderStatusFrom(order),
			CancelForm: input,
		}), "Failed to cancel order")
	}

	return h.pages.redirect(c, "/orders/"+id, view.FlashSuccess, "Order cancelled")
}

func (h *OrderHandler) detailPage(data OrderDetailData) *view.Page {
	return &view.Page{Title: "Order " + data.Order.OrderNumber, Nav: "orders", Data: data}
}
