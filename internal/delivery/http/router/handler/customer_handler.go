// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"salesapi/internal/delivery/http/response"
	"salesapi/internal/usecase"
)

// CustomerHandler holds dependencies for customer-related handlers.
type CustomerHandler struct {
	uc usecase.CustomerUsecase
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List handles GET /customers with limit/offset paging and an optional
// salesperson filter.
func (h *CustomerHandler) List(c echo.Context) error {
	input := usecase.ListCustomersInput{
		Limit:         queryInt64(c, "limit"),
		Offset:        queryInt64(c, "offset"),
		SalespersonID: c.QueryParam("salesperson"),
	}

	customers, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customers, "Customers retrieved successfully")
}

// Count handles GET /customers/count with an optional salesperson filter.
func (h *CustomerHandler) Count(c echo.Context) error {
	count, err := h.uc.Count(c.Request().Context(), c.QueryParam("salesperson"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"count": count}, "Customers counted successfully")
}

// Get handles GET /customers/:id.
func (h *CustomerHandler) Get(c echo.Context) error {
	customer, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customer, "Customer retrieved successfully")
}

// Create handles POST /customers.
func (h *CustomerHandler) Create(c echo.Context) error {
	var form *usecase.CustomerForm
	if err := c.Bind(&form); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}
	if err := c.Validate(form); err != nil {
		return errors.WithStack(err)
	}

	customer, err := h.uc.Create(c.Request().Context(), form)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, customer, "Customer created successfully")
}

// Update handles PUT /customers/:id.
func (h *CustomerHandler) Update(c echo.Context) error {
	var form *usecase.CustomerForm
	// Bind leaves form nil when the request carries no body.
	if err := c.Bind(&form); err != nil || form == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}
	form.ID = c.Param("id")
	if err := c.Validate(form); err != nil {
		return errors.WithStack(err)
	}

	customer, err := h.uc.Update(c.Request().Context(), form)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customer, "Customer updated successfully")
}

// Delete handles DELETE /customers/:id.
func (h *CustomerHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")}, "Customer deleted successfully")
}

// queryInt64 parses an optional numeric query parameter, defaulting to zero.
func queryInt64(c echo.Context, name string) int64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}

	return value
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
