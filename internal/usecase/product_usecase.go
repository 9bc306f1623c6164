package usecase

import (
	"context"

	"adminpanel/internal/domain/entity"
	"adminpanel/internal/usecase/form"
)

// ProductFilter is handed to the API as query parameters.
type ProductFilter struct {
	Search   string `query:"search"`
	Category string `query:"category"`
}

// ProductUsecase lists and edits the catalog.
type ProductUsecase interface {
	List(ctx context.Context, filter ProductFilter) ([]entity.Product, error)
	Get(ctx context.Context, id string) (*entity.Product, error)

	// Submit creates a product when id is empty and updates it otherwise.
	Submit(ctx context.Context, id string, input form.Product) (*entity.Product, error)

	Delete(ctx context.Context, id string) error
	UpdateInventory(ctx context.Context, id string, input form.Inventory) (*entity.Product, error)
	Categories(ctx context.Context) ([]entity.CategoryOption, error)

	// ImageURL resolves a stored image reference for display.
	ImageURL(ref string) string
}
