package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"salesapi/internal/delivery/http/response"
	"salesapi/internal/usecase"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// updateOrderRequest wraps the order form with the status the order held
// immediately before this update; the pair drives the stock instruction.
type updateOrderRequest struct {
	usecase.OrderForm
	PriorStatus string `json:"priorStatus" validate:"required"`
}

// ListByCustomer handles GET /orders?customer=<id>.
func (h *OrderHandler) ListByCustomer(c echo.Context) error {
	customerID := c.QueryParam("customer")
	if customerID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "customer query parameter is required")
	}

	orders, err := h.uc.ListByCustomer(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// Create handles POST /orders. The submitted status is ignored; orders always
// start PENDING.
func (h *OrderHandler) Create(c echo.Context) error {
	var form *usecase.OrderForm
	if err := c.Bind(&form); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(form); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.Create(c.Request().Context(), form)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created successfully")
}

// Update handles PUT /orders/:id.
func (h *OrderHandler) Update(c echo.Context) error {
	var req *updateOrderRequest
	// Bind leaves req nil when the request carries no body.
	if err := c.Bind(&req); err != nil || req == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	req.ID = c.Param("id")
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.Update(c.Request().Context(), &req.OrderForm, req.PriorStatus)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order updated successfully")
}
