// Package router wires the console pages to their URLs.
package router

import (
	"net/http"

	"adminpanel/internal/delivery/console/handler"
	"adminpanel/internal/delivery/console/middleware"
	"adminpanel/internal/delivery/console/view"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	DashboardHandler *handler.DashboardHandler
	ProductHandler   *handler.ProductHandler
	OrderHandler     *handler.OrderHandler
	AdminHandler     *handler.AdminHandler
	GuardMiddleware  *middleware.GuardMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	dashboardHandler *handler.DashboardHandler
	productHandler   *handler.ProductHandler
	orderHandler     *handler.OrderHandler
	adminHandler     *handler.AdminHandler
	guard            *middleware.GuardMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		dashboardHandler: params.DashboardHandler,
		productHandler:   params.ProductHandler,
		orderHandler:     params.OrderHandler,
		adminHandler:     params.AdminHandler,
		guard:            params.GuardMiddleware,
	}
}

// RegisterRoutes sets up every console page.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.authHandler.Health)
	e.StaticFS("/static", view.StaticFS())

	// Sign-in pages bounce an operator who is already signed in
	loginGroup := e.Group(middleware.LoginPath, r.guard.RedirectAuthenticated)
	{
		loginGroup.GET("", r.authHandler.LoginPage)
		loginGroup.POST("", r.authHandler.Login)
	}
	e.POST("/logout", r.authHandler.Logout)

	console := e.Group("", r.guard.RequireSession)
	{
		console.GET("/", redirectTo(middleware.DashboardPath))
		console.GET(middleware.DashboardPath, r.dashboardHandler.Show)

		console.GET("/products", r.productHandler.List)
		console.GET("/products/new", r.productHandler.New)
		console.POST("/products", r.productHandler.Create)
		console.GET("/products/:id/edit", r.productHandler.Edit)
		console.POST("/products/:id", r.productHandler.Update)
		console.POST("/products/:id/delete", r.productHandler.Delete)
		console.POST("/products/:id/inventory", r.productHandler.UpdateInventory)

		console.GET("/orders", r.orderHandler.List)
		console.GET("/orders/:id", r.orderHandler.Show)
		console.GET("/orders/:id/qr.png", r.orderHandler.QR)
		console.POST("/orders/:id/status", r.orderHandler.UpdateStatus)
		console.POST("/orders/:id/cancel", r.orderHandler.Cancel)

		console.GET("/admins", r.adminHandler.List)
		console.GET("/admins/new", r.adminHandler.New)
		console.POST("/admins", r.adminHandler.Create)
		console.GET("/admins/:id/edit", r.adminHandler.Edit)
		console.POST("/admins/:id", r.adminHandler.Update)
		console.POST("/admins/:id/delete", r.adminHandler.Delete)

		console.GET("/account/password", r.authHandler.PasswordPage)
		console.POST("/account/password", r.authHandler.ChangePassword)

		// unknown pages land on the dashboard
		console.GET("/*", redirectTo(middleware.DashboardPath))
	}
}

func redirectTo(location string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, location)
	}
}
