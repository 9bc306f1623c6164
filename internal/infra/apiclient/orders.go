package apiclient

import (
	"context"
	"net/http"

	"adminpanel/internal/domain/entity"
	domainerrors "adminpanel/internal/domain/errors"
	"adminpanel/internal/domain/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type cancelOrderRequest struct {
	Reason string `json:"reason"`
}

// ListOrders returns every order; the API offers no server-side filters.
func (c *Client) ListOrders(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	err := c.do(ctx, request{method: http.MethodGet, path: "/orders"}, func(env envelope) error {
		var err error
		orders, err = decodeList[entity.Order](env, "orders")

		return err
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, id primitive.ObjectID) (*entity.Order, error) {
	hex, err := pathID(id)
	if err != nil {
		return nil, err
	}

	order, err := c.orderCall(ctx, request{method: http.MethodGet, path: "/orders/" + hex})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domainerrors.ErrNotFound
	}

	return order, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, req service.OrderStatusRequest) (*entity.Order, error) {
	hex, err := pathID(id)
	if err != nil {
		return nil, err
	}

	return c.orderCall(ctx, request{method: http.MethodPut, path: "/orders/" + hex + "/status", body: req})
}

func (c *Client) CancelOrder(ctx context.Context, id primitive.ObjectID, reason string) (*entity.Order, error) {
	hex, err := pathID(id)
	if err != nil {
		return nil, err
	}

	return c.orderCall(ctx, request{
		method: http.MethodPut,
		path:   "/orders/" + hex + "/cancel",
		body:   cancelOrderRequest{Reason: reason},
	})
}

func (c *Client) orderCall(ctx context.Context, req request) (*entity.Order, error) {
	var order *entity.Order
	err := c.do(ctx, req, func(env envelope) error {
		var err error
		order, err = decodeOne[entity.Order](env, "order")

		return err
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}
