package impl

import (
	"context"
	"testing"
	"time"

	"adminpanel/internal/domain/entity"
	domainerrors "adminpanel/internal/domain/errors"
	"adminpanel/internal/infra/session"
	mockService "adminpanel/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Summary(t *testing.T) {
	products := mockService.NewMockProductAPI(t)
	orders := mockService.NewMockOrderAPI(t)
	holder := session.NewHolder()
	profile := newTestProfile()
	holder.Authenticate("tok", profile, noExpiry)

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	var list []entity.Order
	for i := range 7 {
		status := entity.OrderStatusNotContacted
		if i%3 == 0 {
			status = entity.OrderStatusDelivered
		}
		list = append(list, entity.Order{
			OrderNumber: "ORD-" + string(rune('A'+i)),
			Status:      status,
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		})
	}

	products.EXPECT().ListProducts(mock.Anything, mock.Anything).Return([]entity.Product{
		{TitleUz: "Xalat", StockQuantity: 3},
		{TitleUz: "Sochiq", StockQuantity: 0},
	}, nil).Once()
	orders.EXPECT().ListOrders(mock.Anything).Return(list, nil).Once()

	srv := NewDashboardService(DashboardServiceParams{
		Products: products,
		Orders:   orders,
		Session:  holder,
		Logger:   newDiscardLogger(),
	})

	summary, err := srv.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, profile, summary.Profile)
	assert.Equal(t, 7, summary.TotalOrders)
	assert.Equal(t, 2, summary.ProductCount)
	require.Len(t, summary.OutOfStock, 1)
	assert.Equal(t, "Sochiq", summary.OutOfStock[0].TitleUz)

	require.Len(t, summary.OrderCounts, len(entity.OrderStatuses()))
	assert.Equal(t, 4, summary.OrderCounts[0].Count)
	assert.Equal(t, entity.OrderStatusDelivered, summary.OrderCounts[2].Status)
	assert.Equal(t, 3, summary.OrderCounts[2].Count)

	require.Len(t, summary.RecentOrders, recentOrderLimit)
	assert.Equal(t, "ORD-G", summary.RecentOrders[0].OrderNumber)
	assert.Equal(t, "ORD-C", summary.RecentOrders[4].OrderNumber)
}

func TestDashboardService_SummaryFailsWhenAnyCallFails(t *testing.T) {
	products := mockService.NewMockProductAPI(t)
	orders := mockService.NewMockOrderAPI(t)
	holder := session.NewHolder()
	holder.Authenticate("tok", newTestProfile(), noExpiry)

	products.EXPECT().ListProducts(mock.Anything, mock.Anything).Return(nil, domainerrors.NewAPIError(500, "")).Once()
	orders.EXPECT().ListOrders(mock.Anything).Return(nil, nil).Maybe()

	srv := NewDashboardService(DashboardServiceParams{
		Products: products,
		Orders:   orders,
		Session:  holder,
		Logger:   newDiscardLogger(),
	})

	_, err := srv.Summary(context.Background())
	require.Error(t, err)
}

func TestDashboardService_SummaryRequiresSession(t *testing.T) {
	holder := session.NewHolder()
	holder.Clear()

	srv := NewDashboardService(DashboardServiceParams{
		Products: mockService.NewMockProductAPI(t),
		Orders:   mockService.NewMockOrderAPI(t),
		Session:  holder,
		Logger:   newDiscardLogger(),
	})

	_, err := srv.Summary(context.Background())
	require.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}
