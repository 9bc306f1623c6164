package usecase

import (
	"context"

	"adminpanel/internal/domain/entity"
	"adminpanel/internal/usecase/form"
)

// AdminUsecase manages operator accounts.
type AdminUsecase interface {
	List(ctx context.Context) ([]entity.Admin, error)
	Get(ctx context.Context, id string) (*entity.Admin, error)

	// Submit creates an admin when id is empty and updates it otherwise.
	Submit(ctx context.Context, id string, input form.Admin) (*entity.Admin, error)

	Delete(ctx context.Context, id string) error
}
