package handler

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"adminpanel/config"
	"adminpanel/internal/delivery/console/view"
	"adminpanel/internal/domain/entity"
	domainerrors "adminpanel/internal/domain/errors"
	mockUsecase "adminpanel/internal/mocks/usecase"
	"adminpanel/internal/usecase"
	"adminpanel/internal/usecase/form"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

type productFixture struct {
	e         *echo.Echo
	flasher   *view.Flasher
	productUC *mockUsecase.MockProductUsecase
}

func newProductFixture(t *testing.T) *productFixture {
	f := &productFixture{
		flasher:   newTestFlasher(t),
		productUC: mockUsecase.NewMockProductUsecase(t),
	}
	f.e = newTestEcho(t, f.flasher, newTestOperator())

	cfg := &config.Config{}
	cfg.Upload.MaxImageSize = 1 << 20
	h := NewProductHandler(ProductHandlerParams{ProductUC: f.productUC, Config: cfg, Flasher: f.flasher, Logger: newDiscardLogger()})
	f.e.GET("/products", h.List)
	f.e.GET("/products/new", h.New)
	f.e.POST("/products", h.Create)
	f.e.GET("/products/:id/edit", h.Edit)
	f.e.POST("/products/:id", h.Update)
	f.e.POST("/products/:id/delete", h.Delete)
	f.e.POST("/products/:id/inventory", h.UpdateInventory)

	return f
}

func testCategories() []entity.CategoryOption {
	return []entity.CategoryOption{
		{Value: entity.CategoryBathrobe, Label: "Bathrobe"},
		{Value: entity.CategoryTowel, Label: "Towel"},
	}
}

func productValues() url.Values {
	return url.Values{
		"title_uz":       {"Xalat"},
		"title_ru":       {"Халат"},
		"description_uz": {"Paxta xalat"},
		"description_ru": {"Хлопковый халат"},
		"category":       {"bathrobe"},
		"price":          {"150000"},
		"stockQuantity":  {"4"},
		"sizes":          {"S, M"},
		"colors":         {"white"},
	}
}

func TestProductHandler_List(t *testing.T) {
	f := newProductFixture(t)
	f.productUC.EXPECT().Categories(mock.Anything).Return(testCategories(), nil).Once()
	f.productUC.EXPECT().
		List(mock.Anything, usecase.ProductFilter{Search: "xalat", Category: "bathrobe"}).
		Return([]entity.Product{{ID: primitive.NewObjectID(), TitleUz: "Xalat", Category: entity.CategoryBathrobe, Price: decimal.NewFromInt(150000), StockQuantity: 2}}, nil).
		Once()

	rec := doGet(f.e, "/products?search=xalat&category=bathrobe")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Xalat")
	assert.Contains(t, rec.Body.String(), `<option value="bathrobe" selected>`)
}

func TestProductHandler_Create(t *testing.T) {
	t.Run("sends fields and images", func(t *testing.T) {
		f := newProductFixture(t)
		f.productUC.EXPECT().
			Submit(mock.Anything, "", mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, input form.Product) (*entity.Product, error) {
				assert.Equal(t, "Xalat", input.TitleUz)
				assert.Equal(t, "S, M", input.Sizes)
				require.Len(t, input.Images, 1)
				assert.Equal(t, "front.png", input.Images[0].Name)
				assert.Equal(t, pngHeader, input.Images[0].Data)

				return &entity.Product{ID: primitive.NewObjectID()}, nil
			}).
			Once()

		rec := doPostMultipart(t, f.e, "/products", productValues(), testFile{field: "images", name: "front.png", data: pngHeader})

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/products", rec.Header().Get(echo.HeaderLocation))
		assert.Equal(t, []view.Flash{{Kind: view.FlashSuccess, Message: "Product created"}}, followFlashes(f.flasher, rec))
	})

	t.Run("field errors re-render the form", func(t *testing.T) {
		f := newProductFixture(t)
		invalid := domainerrors.NewValidationError("price", "Price must be a non-negative number")
		invalid.Add("images", "notes.txt is not an image")
		f.productUC.EXPECT().Submit(mock.Anything, "", mock.Anything).Return(nil, invalid).Once()
		f.productUC.EXPECT().Categories(mock.Anything).Return(testCategories(), nil).Once()

		values := productValues()
		values.Set("price", "-1")
		rec := doPostMultipart(t, f.e, "/products", values, testFile{field: "images", name: "notes.txt", data: []byte("hello")})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Price must be a non-negative number")
		assert.Contains(t, body, "notes.txt is not an image")
		assert.Contains(t, body, `value="-1"`)
		assert.Contains(t, body, "Please fill in all fields correctly")
	})
}

func TestProductHandler_Update(t *testing.T) {
	f := newProductFixture(t)
	id := primitive.NewObjectID().Hex()
	f.productUC.EXPECT().
		Submit(mock.Anything, id, mock.MatchedBy(func(input form.Product) bool {
			return input.TitleRu == "Халат" && len(input.Images) == 0
		})).
		Return(&entity.Product{}, nil).
		Once()

	rec := doPostForm(f.e, "/products/"+id, productValues())

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, []view.Flash{{Kind: view.FlashSuccess, Message: "Product updated"}}, followFlashes(f.flasher, rec))
}

func TestProductHandler_Edit(t *testing.T) {
	f := newProductFixture(t)
	id := primitive.NewObjectID()
	f.productUC.EXPECT().Get(mock.Anything, id.Hex()).Return(&entity.Product{
		ID:            id,
		TitleUz:       "Xalat",
		Category:      entity.CategoryBathrobe,
		Price:         decimal.NewFromInt(150000),
		StockQuantity: 7,
		Sizes:         []string{"S", "M"},
		Images:        []string{"uploads/front.png"},
	}, nil).Once()
	f.productUC.EXPECT().Categories(mock.Anything).Return(testCategories(), nil).Once()

	rec := doGet(f.e, "/products/"+id.Hex()+"/edit")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `value="S, M"`)
	assert.Contains(t, body, "https://cdn.test/uploads/front.png")
	assert.Contains(t, body, "/products/"+id.Hex()+"/inventory")
}

func TestProductHandler_Delete(t *testing.T) {
	f := newProductFixture(t)
	id := primitive.NewObjectID().Hex()
	f.productUC.EXPECT().Delete(mock.Anything, id).Return(domainerrors.NewAPIError(http.StatusInternalServerError, "")).Once()

	rec := doPostForm(f.e, "/products/"+id+"/delete", nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/products", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, []view.Flash{{Kind: view.FlashError, Message: "Failed to delete product"}}, followFlashes(f.flasher, rec))
}

func TestProductHandler_UpdateInventory(t *testing.T) {
	f := newProductFixture(t)
	id := primitive.NewObjectID().Hex()
	f.productUC.EXPECT().
		UpdateInventory(mock.Anything, id, form.Inventory{StockQuantity: "1.5"}).
		Return(nil, domainerrors.NewValidationError("stockQuantity", "Stock must be a whole number of zero or more")).
		Once()

	rec := doPostForm(f.e, "/products/"+id+"/inventory", url.Values{"stockQuantity": {"1.5"}})

	assert.Equal(t, "/products/"+id+"/edit", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, []view.Flash{{Kind: view.FlashError, Message: "Stock must be a whole number of zero or more"}}, followFlashes(f.flasher, rec))
}
