package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"adminpanel/internal/domain/entity"
	domainerrors "adminpanel/internal/domain/errors"
	"adminpanel/internal/domain/service"
	"adminpanel/internal/infra/media"
	mockService "adminpanel/internal/mocks/service"
	"adminpanel/internal/usecase"
	"adminpanel/internal/usecase/form"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubResolver struct{}

func (stubResolver) ResolveImageURL(ref string) string { return "https://cdn.test/" + ref }

func newProductService(t *testing.T) (*mockService.MockProductAPI, usecase.ProductUsecase) {
	t.Helper()

	api := mockService.NewMockProductAPI(t)

	return api, NewProductService(ProductServiceParams{
		API:       api,
		Images:    stubResolver{},
		Inspector: media.NewInspector(1 << 20),
		Validator: newTestValidator(),
		Logger:    newDiscardLogger(),
	})
}

func validProductForm() form.Product {
	return form.Product{
		TitleUz:       "Xalat",
		TitleRu:       "Халат",
		DescriptionUz: "Paxta xalat",
		DescriptionRu: "Хлопковый халат",
		Category:      "bathrobe",
		Price:         "150000",
		StockQuantity: "12",
		Sizes:         "S, M, , L",
		Colors:        "white，blue",
	}
}

func TestProductService_Submit_CreatesWithParsedLists(t *testing.T) {
	api, srv := newProductService(t)

	created := &entity.Product{ID: primitive.NewObjectID(), TitleUz: "Xalat"}
	api.EXPECT().
		CreateProduct(mock.Anything, mock.MatchedBy(func(req service.ProductRequest) bool {
			return assert.ObjectsAreEqual([]string{"S", "M", "L"}, req.Sizes) &&
				assert.ObjectsAreEqual([]string{"white", "blue"}, req.Colors) &&
				req.Price.Equal(decimal.NewFromInt(150000)) &&
				req.StockQuantity != nil && *req.StockQuantity == 12 &&
				len(req.Images) == 1 && req.Images[0].ContentType == "image/png"
		})).
		Return(created, nil).
		Once()

	input := validProductForm()
	input.Images = []form.Upload{{Name: "front.png", Data: pngHeader}}

	got, err := srv.Submit(context.Background(), "", input)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestProductService_Submit_RejectsBeforeNetwork(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		mutate func(*form.Product)
		field  string
	}{
		{name: "negative price", mutate: func(p *form.Product) { p.Price = "-1" }, field: "price"},
		{name: "price not a number", mutate: func(p *form.Product) { p.Price = "abc" }, field: "price"},
		{name: "fractional stock", mutate: func(p *form.Product) { p.StockQuantity = "1.5" }, field: "stockQuantity"},
		{name: "unknown category", mutate: func(p *form.Product) { p.Category = "shoes" }, field: "category"},
		{name: "blank russian title", mutate: func(p *form.Product) { p.TitleRu = "   " }, field: "title_ru"},
		{
			name:   "not an image",
			mutate: func(p *form.Product) { p.Images = []form.Upload{{Name: "notes.txt", Data: []byte("hello")}} },
			field:  "images",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, srv := newProductService(t)

			input := validProductForm()
			tt.mutate(&input)

			_, err := srv.Submit(context.Background(), tt.id, input)

			var validationErr *domainerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Fields, tt.field)
			api.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
		})
	}
}

func TestProductService_Submit_InvalidIDNeverReachesAPI(t *testing.T) {
	_, srv := newProductService(t)

	_, err := srv.Submit(context.Background(), "not-an-id", validProductForm())
	require.ErrorIs(t, err, domainerrors.ErrInvalidID)
}

func TestProductService_Submit_UpdateWithoutStockSendsNil(t *testing.T) {
	api, srv := newProductService(t)
	id := primitive.NewObjectID()

	api.EXPECT().
		UpdateProduct(mock.Anything, id, mock.MatchedBy(func(req service.ProductRequest) bool {
			return req.StockQuantity == nil && len(req.Images) == 0
		})).
		Return(&entity.Product{ID: id}, nil).
		Once()

	input := validProductForm()
	input.StockQuantity = ""

	_, err := srv.Submit(context.Background(), id.Hex(), input)
	require.NoError(t, err)
}

func TestProductService_Submit_CollapsesDuplicates(t *testing.T) {
	api, srv := newProductService(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	api.EXPECT().
		CreateProduct(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, service.ProductRequest) (*entity.Product, error) {
			close(entered)
			<-release

			return &entity.Product{ID: primitive.NewObjectID()}, nil
		}).
		Once()

	var wg sync.WaitGroup
	results := make([]*entity.Product, 2)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			product, err := srv.Submit(context.Background(), "", validProductForm())
			assert.NoError(t, err)
			results[i] = product
		}()
		if i == 0 {
			<-entered
		}
	}

	// give the second submission time to join the one in flight
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Same(t, results[0], results[1])
}

func TestProductService_List_DropsUnknownCategory(t *testing.T) {
	api, srv := newProductService(t)

	api.EXPECT().ListProducts(mock.Anything, service.ProductQuery{Search: "xalat"}).Return(nil, nil).Once()
	api.EXPECT().ListProducts(mock.Anything, service.ProductQuery{Category: entity.CategoryTowel}).
		Return([]entity.Product{{TitleUz: "Sochiq"}}, nil).Once()

	_, err := srv.List(context.Background(), usecase.ProductFilter{Search: "  xalat ", Category: "shoes"})
	require.NoError(t, err)

	products, err := srv.List(context.Background(), usecase.ProductFilter{Category: "towel"})
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestProductService_UpdateInventory(t *testing.T) {
	api, srv := newProductService(t)
	id := primitive.NewObjectID()

	_, err := srv.UpdateInventory(context.Background(), id.Hex(), form.Inventory{StockQuantity: "-3"})
	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	api.EXPECT().UpdateInventory(mock.Anything, id, 7).Return(&entity.Product{ID: id, StockQuantity: 7}, nil).Once()

	product, err := srv.UpdateInventory(context.Background(), id.Hex(), form.Inventory{StockQuantity: " 7 "})
	require.NoError(t, err)
	assert.Equal(t, 7, product.StockQuantity)
}

func TestProductService_Categories(t *testing.T) {
	t.Run("falls back to built-in list", func(t *testing.T) {
		api, srv := newProductService(t)
		api.EXPECT().ProductCategories(mock.Anything).Return(nil, domainerrors.NewAPIError(500, "")).Once()

		options, err := srv.Categories(context.Background())
		require.NoError(t, err)
		assert.Len(t, options, len(entity.Categories()))
	})

	t.Run("unauthorized is not hidden", func(t *testing.T) {
		api, srv := newProductService(t)
		api.EXPECT().ProductCategories(mock.Anything).Return(nil, domainerrors.NewAPIError(401, "")).Once()

		_, err := srv.Categories(context.Background())
		require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}

func TestProductService_ImageURL(t *testing.T) {
	_, srv := newProductService(t)

	assert.Equal(t, "https://cdn.test/uploads/a.png", srv.ImageURL("uploads/a.png"))
}
