package impl

import (
	"context"
	"log/slog"
	"sort"

	deliverycontext "adminpanel/internal/delivery/context"
	"adminpanel/internal/domain/entity"
	domainerrors "adminpanel/internal/domain/errors"
	"adminpanel/internal/domain/service"
	"adminpanel/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const recentOrderLimit = 5

// DashboardServiceParams defines the dependencies of the dashboard service.
type DashboardServiceParams struct {
	fx.In

	Products service.ProductAPI
	Orders   service.OrderAPI
	Session  service.SessionReader
	Logger   *slog.Logger
}

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	products service.ProductAPI
	orders   service.OrderAPI
	session  service.SessionReader
	logger   *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		products: params.Products,
		orders:   params.Orders,
		session:  params.Session,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Summary loads products and orders concurrently and aggregates them.
func (srv *dashboardService) Summary(ctx context.Context) (*usecase.DashboardSummary, error) {
	snap := srv.session.Snapshot()
	if !snap.IsAuthenticated() {
		return nil, domainerrors.ErrNotAuthenticated
	}

	var (
		products []entity.Product
		orders   []entity.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = srv.products.ListProducts(gctx, service.ProductQuery{})

		return errors.Wrap(err, "failed to list products")
	})
	g.Go(func() error {
		var err error
		orders, err = srv.orders.ListOrders(gctx)

		return errors.Wrap(err, "failed to list orders")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &usecase.DashboardSummary{
		Profile:      snap.Profile,
		TotalOrders:  len(orders),
		ProductCount: len(products),
	}

	counts := make(map[entity.OrderStatus]int, len(entity.OrderStatuses()))
	for _, order := range orders {
		counts[order.Status]++
	}
	for _, status := range entity.OrderStatuses() {
		summary.OrderCounts = append(summary.OrderCounts, usecase.StatusCount{Status: status, Count: counts[status]})
	}

	for _, product := range products {
		if !product.InStock() {
			summary.OutOfStock = append(summary.OutOfStock, product)
		}
	}

	recent := make([]entity.Order, len(orders))
	copy(recent, orders)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentOrderLimit {
		recent = recent[:recentOrderLimit]
	}
	summary.RecentOrders = recent

	srv.log(ctx).Debug("Dashboard assembled",
		slog.Int("products", summary.ProductCount),
		slog.Int("orders", summary.TotalOrders),
	)

	return summary, nil
}
