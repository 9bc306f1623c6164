package apiclient

import (
	"context"
	"io"
	"net/http"
	"testing"

	"adminpanel/internal/domain/entity"
	"adminpanel/internal/domain/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestClient_CreateProductMultipartLayout(t *testing.T) {
	stock := 12
	req := service.ProductRequest{
		TitleUz:       "Xalat",
		TitleRu:       "Халат",
		DescriptionUz: "Paxta",
		DescriptionRu: "Хлопок",
		Category:      entity.CategoryBathrobe,
		Price:         decimal.RequireFromString("149000.00"),
		StockQuantity: &stock,
		Sizes:         []string{"S", "M", "L"},
		Colors:        []string{"oq", "ko'k"},
		Images: []service.Attachment{
			{Name: "front.png", ContentType: "image/png", Data: []byte("png-1")},
			{Name: "back.png", ContentType: "image/png", Data: []byte("png-2")},
		},
	}

	var (
		values map[string][]string
		files  []string
		data   []string
	)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		values = r.MultipartForm.Value
		for _, fh := range r.MultipartForm.File["images"] {
			files = append(files, fh.Filename)
			f, err := fh.Open()
			if assert.NoError(t, err) {
				raw, _ := io.ReadAll(f)
				data = append(data, string(raw))
				f.Close()
			}
		}
		writeJSON(w, http.StatusCreated, `{"success":true,"product":{"_id":"`+testProductID+`","title_uz":"Xalat"}}`)
	}, "tok")

	product, err := client.CreateProduct(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Xalat", product.TitleUz)

	assert.Equal(t, []string{"S", "M", "L"}, values["sizes[]"])
	assert.Equal(t, []string{"oq", "ko'k"}, values["colors[]"])
	assert.Equal(t, []string{"149000"}, values["price"])
	assert.Equal(t, []string{"12"}, values["stockQuantity"])
	assert.Equal(t, []string{"bathrobe"}, values["category"])
	assert.Equal(t, []string{"Халат"}, values["title_ru"])
	assert.NotContains(t, values, "sizes")
	assert.Equal(t, []string{"front.png", "back.png"}, files)
	assert.Equal(t, []string{"png-1", "png-2"}, data)
}

func TestEncodeProduct_EmptyStockAndLists(t *testing.T) {
	body, err := encodeProduct(service.ProductRequest{
		TitleUz:  "Sochiq",
		Category: entity.CategoryTowel,
		Price:    decimal.Zero,
	})
	require.NoError(t, err)
	assert.Contains(t, body.contentType, "multipart/form-data; boundary=")
	assert.NotContains(t, string(body.data), `name="stockQuantity"`)
	assert.NotContains(t, string(body.data), `name="sizes[]"`)
	assert.NotContains(t, string(body.data), `name="images"`)
}

func TestClient_UpdateProductWithoutStockLeavesInventory(t *testing.T) {
	id, err := primitive.ObjectIDFromHex(testProductID)
	require.NoError(t, err)

	var values map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/products/"+testProductID, r.URL.Path)
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		values = r.MultipartForm.Value
		writeJSON(w, http.StatusOK, `{"success":true,"product":{"_id":"`+testProductID+`","title_uz":"Xalat"}}`)
	}, "tok")

	_, err = client.UpdateProduct(context.Background(), id, service.ProductRequest{
		TitleUz:  "Xalat",
		Category: entity.CategoryBathrobe,
		Price:    decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"10"}, values["price"])
	assert.NotContains(t, values, "stockQuantity")
}
