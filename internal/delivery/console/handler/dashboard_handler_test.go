package handler

import (
	"net/http"
	"testing"
	"time"

	"adminpanel/internal/domain/entity"
	domainerrors "adminpanel/internal/domain/errors"
	mockUsecase "adminpanel/internal/mocks/usecase"
	"adminpanel/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDashboardHandler_Show(t *testing.T) {
	flasher := newTestFlasher(t)
	operator := newTestOperator()
	dashboardUC := mockUsecase.NewMockDashboardUsecase(t)
	e := newTestEcho(t, flasher, operator)
	e.GET("/dashboard", NewDashboardHandler(DashboardHandlerParams{
		DashboardUC: dashboardUC,
		Flasher:     flasher,
		Logger:      newDiscardLogger(),
	}).Show)

	t.Run("renders the summary", func(t *testing.T) {
		dashboardUC.EXPECT().Summary(mock.Anything).Return(&usecase.DashboardSummary{
			Profile:      operator,
			TotalOrders:  1,
			ProductCount: 2,
			OrderCounts: []usecase.StatusCount{
				{Status: entity.OrderStatusNotContacted, Count: 1},
				{Status: entity.OrderStatusDelivered, Count: 0},
			},
			OutOfStock: []entity.Product{{ID: primitive.NewObjectID(), TitleUz: "Sochiq"}},
			RecentOrders: []entity.Order{{
				ID:          primitive.NewObjectID(),
				OrderNumber: "ORD-1001",
				Status:      entity.OrderStatusNotContacted,
				Customer:    entity.Customer{FullName: "Bobur Aliyev"},
				Items:       []entity.OrderItem{{TotalPrice: decimal.RequireFromString("300000")}},
				CreatedAt:   time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			}},
		}, nil).Once()

		rec := doGet(e, "/dashboard")

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Welcome, Aziza Karimova")
		assert.Contains(t, body, "ORD-1001")
		assert.Contains(t, body, "300000.00")
		assert.Contains(t, body, "Sochiq")
		assert.Contains(t, body, `href="/orders?status=not_contacted"`)
	})

	t.Run("api failure renders the error page", func(t *testing.T) {
		dashboardUC.EXPECT().Summary(mock.Anything).
			Return(nil, domainerrors.NewAPIError(http.StatusInternalServerError, "")).
			Once()

		rec := doGet(e, "/dashboard")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}
