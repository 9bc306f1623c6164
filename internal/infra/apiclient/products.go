package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"adminpanel/internal/domain/entity"
	domainerrors "adminpanel/internal/domain/errors"
	"adminpanel/internal/domain/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type inventoryRequest struct {
	StockQuantity int `json:"stockQuantity"`
}

// ListProducts lists products; the API applies search and category. Only
// non-empty filters are sent.
func (c *Client) ListProducts(ctx context.Context, query service.ProductQuery) ([]entity.Product, error) {
	params := url.Values{}
	if query.Search != "" {
		params.Set("search", query.Search)
	}
	if query.Category != "" {
		params.Set("category", query.Category.String())
	}

	var products []entity.Product
	err := c.do(ctx, request{method: http.MethodGet, path: "/products", query: params}, func(env envelope) error {
		var err error
		products, err = decodeList[entity.Product](env, "products")

		return err
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id primitive.ObjectID) (*entity.Product, error) {
	hex, err := pathID(id)
	if err != nil {
		return nil, err
	}

	product, err := c.productCall(ctx, request{method: http.MethodGet, path: "/products/" + hex})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domainerrors.ErrNotFound
	}

	return product, nil
}

func (c *Client) CreateProduct(ctx context.Context, req service.ProductRequest) (*entity.Product, error) {
	form, err := encodeProduct(req)
	if err != nil {
		return nil, err
	}

	return c.productCall(ctx, request{method: http.MethodPost, path: "/products", form: form})
}

func (c *Client) UpdateProduct(ctx context.Context, id primitive.ObjectID, req service.ProductRequest) (*entity.Product, error) {
	hex, err := pathID(id)
	if err != nil {
		return nil, err
	}

	form, err := encodeProduct(req)
	if err != nil {
		return nil, err
	}

	return c.productCall(ctx, request{method: http.MethodPut, path: "/products/" + hex, form: form})
}

func (c *Client) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	hex, err := pathID(id)
	if err != nil {
		return err
	}

	return c.do(ctx, request{method: http.MethodDelete, path: "/products/" + hex}, nil)
}

func (c *Client) UpdateInventory(ctx context.Context, id primitive.ObjectID, stockQuantity int) (*entity.Product, error) {
	hex, err := pathID(id)
	if err != nil {
		return nil, err
	}

	return c.productCall(ctx, request{
		method: http.MethodPatch,
		path:   "/products/" + hex + "/inventory",
		body:   inventoryRequest{StockQuantity: stockQuantity},
	})
}

// ProductCategories returns the categories the API knows, falling back to
// the built-in list when it answers with none.
func (c *Client) ProductCategories(ctx context.Context) ([]entity.CategoryOption, error) {
	var options []entity.CategoryOption
	err := c.do(ctx, request{method: http.MethodGet, path: "/products/categories"}, func(env envelope) error {
		var err error
		options, err = decodeList[entity.CategoryOption](env, "categories")

		return err
	})
	if err != nil {
		return nil, err
	}

	if len(options) == 0 {
		for _, category := range entity.Categories() {
			options = append(options, entity.CategoryOption{Value: category, Label: category.Label()})
		}
	}

	return options, nil
}

func (c *Client) productCall(ctx context.Context, req request) (*entity.Product, error) {
	var product *entity.Product
	err := c.do(ctx, req, func(env envelope) error {
		var err error
		product, err = decodeOne[entity.Product](env, "product")

		return err
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}
