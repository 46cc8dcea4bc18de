package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"salesapi/internal/delivery/http/response"
	"salesapi/internal/usecase"
)

// StatsHandler serves the revenue leaderboards.
type StatsHandler struct {
	uc usecase.OrderUsecase
}

// NewStatsHandler is the constructor for StatsHandler, injected by Fx.
func NewStatsHandler(uc usecase.OrderUsecase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// TopCustomers handles GET /stats/top-customers.
func (h *StatsHandler) TopCustomers(c echo.Context) error {
	entries, err := h.uc.TopCustomers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Top customers retrieved successfully")
}

// TopSalespeople handles GET /stats/top-salespeople.
func (h *StatsHandler) TopSalespeople(c echo.Context) error {
	entries, err := h.uc.TopSalespeople(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Top salespeople retrieved successfully")
}
