package impl

import (
	"context"
	"log/slog"

	deliverycontext "adminpanel/internal/delivery/context"
	"adminpanel/internal/domain/entity"
	"adminpanel/internal/domain/service"
	"adminpanel/internal/usecase"
	"adminpanel/internal/usecase/form"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// OrderServiceParams defines the dependencies of the order service.
type OrderServiceParams struct {
	fx.In

	API       service.OrderAPI
	Validator service.Validator
	Logger    *slog.Logger
}

// orderService implements the OrderUsecase interface.
type orderService struct {
	api       service.OrderAPI
	validator service.Validator
	logger    *slog.Logger
	submits   singleflight.Group
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		api:       params.API,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List fetches every order and filters locally.
func (srv *orderService) List(ctx context.Context, filter usecase.OrderFilter) ([]entity.Order, error) {
	orders, err := srv.api.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	filtered := usecase.FilterOrders(orders, filter)
	srv.log(ctx).Debug("Orders listed",
		slog.Int("total", len(orders)),
		slog.Int("shown", len(filtered)),
	)

	return filtered, nil
}

func (srv *orderService) Get(ctx context.Context, id string) (*entity.Order, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	order, err := srv.api.GetOrder(ctx, oid)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

func (srv *orderService) UpdateStatus(ctx context.Context, id string, input form.OrderStatus) (*entity.Order, error) {
	input.Normalize()
	if err := srv.validator.Validate(&input); err != nil {
		return nil, err
	}

	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	req := input.ToRequest()
	result, err, _ := srv.submits.Do("status:"+id+":"+input.Status+":"+input.InternalNotes, func() (any, error) {
		return srv.api.UpdateOrderStatus(ctx, oid, req)
	})
	if err != nil {
		srv.log(ctx).Info("Order status change rejected", slog.String("order_id", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order status changed",
		slog.String("order_id", id),
		slog.String("status", input.Status),
	)

	return result.(*entity.Order), nil
}

func (srv *orderService) Cancel(ctx context.Context, id string, input form.CancelOrder) (*entity.Order, error) {
	input.Normalize()
	if err := srv.validator.Validate(&input); err != nil {
		return nil, err
	}

	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	result, err, _ := srv.submits.Do("cancel:"+id, func() (any, error) {
		return srv.api.CancelOrder(ctx, oid, input.Reason)
	})
	if err != nil {
		srv.log(ctx).Info("Order cancellation rejected", slog.String("order_id", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order cancelled", slog.String("order_id", id))

	return result.(*entity.Order), nil
}
