package handler

import (
	"log/slog"
	"net/http"

	"adminpanel/config"
	"adminpanel/internal/delivery/console/view"
	"adminpanel/internal/domain/entity"
	"adminpanel/internal/infra/media"
	"adminpanel/internal/usecase"
	"adminpanel/internal/usecase/form"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Config    *config.Config
	Flasher   *view.Flasher
	Logger    *slog.Logger
}

type ProductHandler struct {
	productUC    usecase.ProductUsecase
	maxImageSize int64
	pages        pages
}

func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC:    params.ProductUC,
		maxImageSize: params.Config.Upload.MaxImageSize,
		pages:        pages{flasher: params.Flasher, logger: params.Logger},
	}
}

// ProductListData is the data of the product list page.
type ProductListData struct {
	Products   []entity.Product
	Filter     usecase.ProductFilter
	Categories []entity.CategoryOption
}

// ProductFormData is the data of the product form. ID is empty when creating.
type ProductFormData struct {
	ID         string
	Form       form.Product
	Product    *entity.Product
	Categories []entity.CategoryOption
}

func (h *ProductHandler) List(c echo.Context) error {
	var filter usecase.ProductFilter
	if err := c.Bind(&filter); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid product filter")
	}

	ctx := c.Request().Context()
	categories, err := h.productUC.Categories(ctx)
	if err != nil {
		return err
	}
	products, err := h.productUC.List(ctx, filter)
	if err != nil {
		return err
	}

	return h.pages.render(c, http.StatusOK, "products", &view.Page{
		Title: "Products",
		Nav:   "products",
		Data:  ProductListData{Products: products, Filter: filter, Categories: categories},
	})
}

func (h *ProductHandler) New(c echo.Context) error {
	categories, err := h.productUC.Categories(c.Request().Context())
	if err != nil {
		return err
	}

	return h.pages.render(c, http.StatusOK, "product_form", h.formPage(ProductFormData{Categories: categories}))
}

func (h *ProductHandler) Edit(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	product, err := h.productUC.Get(ctx, id)
	if err != nil {
		return err
	}
	categories, err := h.productUC.Categories(ctx)
	if err != nil {
		return err
	}

	return h.pages.render(c, http.StatusOK, "product_form", h.formPage(ProductFormData{
		ID:         id,
		Form:       form.ProductFrom(product),
		Product:    product,
		Categories: categories,
	}))
}

func (h *ProductHandler) Create(c echo.Context) error {
	return h.submit(c, "")
}

func (h *ProductHandler) Update(c echo.Context) error {
	return h.submit(c, c.Param("id"))
}

func (h *ProductHandler) submit(c echo.Context, id string) error {
	var input form.Product
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid product form")
	}

	uploads, err := readUploads(c, media.ImagesField, h.maxImageSize)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid image upload")
	}
	input.Images = uploads

	ctx := c.Request().Context()
	if _, err := h.productUC.Submit(ctx, id, input); err != nil {
		// the categories call can only fail here on a rejected credential
		categories, catErr := h.productUC.Categories(ctx)
		if catErr != nil {
			return catErr
		}
		input.Images = nil

		return h.pages.formFailure(c, err, "product_form", h.formPage(ProductFormData{
			ID:         id,
			Form:       input,
			Categories: categories,
		}), "Failed to save product")
	}

	message := "Product created"
	if id != "" {
		message = "Product updated"
	}

	return h.pages.redirect(c, "/products", view.FlashSuccess, message)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.productUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.pages.actionFailure(c, err, "/products", "Failed to delete product")
	}

	return h.pages.redirect(c, "/products", view.FlashSuccess, "Product deleted")
}

func (h *ProductHandler) UpdateInventory(c echo.Context) error {
	id := c.Param("id")
	back := "/products/" + id + "/edit"

	var input form.Inventory
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid inventory form")
	}

	if _, err := h.productUC.UpdateInventory(c.Request().Context(), id, input); err != nil {
		return h.pages.actionFailure(c, err, back, "Failed to update stock")
	}

	return h.pages.redirect(c, back, view.FlashSuccess, "Stock updated")
}

func (h *ProductHandler) formPage(data ProductFormData) *view.Page {
	title := "New product"
	if data.ID != "" {
		title = "Edit product"
	}

	return &view.Page{Title: title, Nav: "products", Data: data}
}
