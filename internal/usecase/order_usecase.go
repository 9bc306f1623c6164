package usecase

import (
	"context"
	"strings"

	"adminpanel/internal/domain/entity"
	"adminpanel/internal/usecase/form"
)

// OrderFilter is applied locally; the API returns every order.
type OrderFilter struct {
	Search string             `query:"search"`
	Status entity.OrderStatus `query:"status"`
}

// OrderUsecase tracks orders.
type OrderUsecase interface {
	List(ctx context.Context, filter OrderFilter) ([]entity.Order, error)
	Get(ctx context.Context, id string) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id string, input form.OrderStatus) (*entity.Order, error)
	Cancel(ctx context.Context, id string, input form.CancelOrder) (*entity.Order, error)
}

// FilterOrders keeps orders matching both the status (exact) and the search
// term: case-insensitive on order number and customer name, verbatim on the
// customer phone. Empty criteria match everything. Input order is kept.
func FilterOrders(orders []entity.Order, filter OrderFilter) []entity.Order {
	term := strings.TrimSpace(filter.Search)
	lowered := strings.ToLower(term)

	out := make([]entity.Order, 0, len(orders))
	for _, order := range orders {
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(order.OrderNumber), lowered) &&
			!strings.Contains(strings.ToLower(order.Customer.FullName), lowered) &&
			!strings.Contains(order.Customer.PhoneNumber, term) {
			continue
		}
		out = append(out, order)
	}

	return out
}
