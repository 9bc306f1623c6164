package usecase

import (
	"context"

	"adminpanel/internal/domain/entity"
)

// StatusCount is the number of orders in one status.
type StatusCount struct {
	Status entity.OrderStatus
	Count  int
}

// DashboardSummary is the landing page after sign-in.
type DashboardSummary struct {
	Profile      *entity.Profile
	TotalOrders  int
	OrderCounts  []StatusCount // every status, in display order
	ProductCount int
	OutOfStock   []entity.Product
	RecentOrders []entity.Order
}

// DashboardUsecase assembles the dashboard.
type DashboardUsecase interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}
