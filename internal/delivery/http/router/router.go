// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"salesapi/internal/delivery/http/middleware"
	"salesapi/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	CustomerHandler *handler.CustomerHandler
	ProductHandler  *handler.ProductHandler
	OrderHandler    *handler.OrderHandler
	StatsHandler    *handler.StatsHandler
	UserHandler     *handler.UserHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	customerHandler *handler.CustomerHandler
	productHandler  *handler.ProductHandler
	orderHandler    *handler.OrderHandler
	statsHandler    *handler.StatsHandler
	userHandler     *handler.UserHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		customerHandler: params.CustomerHandler,
		productHandler:  params.ProductHandler,
		orderHandler:    params.OrderHandler,
		statsHandler:    params.StatsHandler,
		userHandler:     params.UserHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Every route passes Identify; a missing or invalid token degrades to an
// anonymous request instead of a rejection.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	e.Use(r.authMiddleware.Identify)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/users", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Identity of the caller, empty when anonymous
	e.GET("/me", r.userHandler.CurrentUser)

	customerGroup := e.Group("/customers")
	{
		customerGroup.GET("", r.customerHandler.List)
		customerGroup.GET("/count", r.customerHandler.Count)
		customerGroup.GET("/:id", r.customerHandler.Get)
		customerGroup.POST("", r.customerHandler.Create)
		customerGroup.PUT("/:id", r.customerHandler.Update)
		customerGroup.DELETE("/:id", r.customerHandler.Delete)
	}

	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/count", r.productHandler.Count)
		productGroup.GET("/:id", r.productHandler.Get)
		productGroup.POST("", r.productHandler.Create)
		productGroup.PUT("/:id", r.productHandler.Update)
		productGroup.DELETE("/:id", r.productHandler.Delete)
	}

	orderGroup := e.Group("/orders")
	{
		orderGroup.GET("", r.orderHandler.ListByCustomer)
		orderGroup.POST("", r.orderHandler.Create)
		orderGroup.PUT("/:id", r.orderHandler.Update)
	}

	statsGroup := e.Group("/stats")
	{
		statsGroup.GET("/top-customers", r.statsHandler.TopCustomers)
		statsGroup.GET("/top-salespeople", r.statsHandler.TopSalespeople)
	}
}
