package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"salesapi/internal/delivery/http/response"
	"salesapi/internal/usecase"
)

// ProductHandler holds dependencies for product-related handlers.
type ProductHandler struct {
	uc usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List handles GET /products with limit/offset paging; hideSoldOut=true
// filters out products with no stock.
func (h *ProductHandler) List(c echo.Context) error {
	input := usecase.ListProductsInput{
		Limit:       queryInt64(c, "limit"),
		Offset:      queryInt64(c, "offset"),
		HideSoldOut: c.QueryParam("hideSoldOut") == "true",
	}

	products, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// Count handles GET /products/count.
func (h *ProductHandler) Count(c echo.Context) error {
	count, err := h.uc.Count(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"count": count}, "Products counted successfully")
}

// Get handles GET /products/:id.
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// Create handles POST /products.
func (h *ProductHandler) Create(c echo.Context) error {
	var form *usecase.ProductForm
	if err := c.Bind(&form); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(form); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.Create(c.Request().Context(), form)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// Update handles PUT /products/:id.
func (h *ProductHandler) Update(c echo.Context) error {
	var form *usecase.ProductForm
	// Bind leaves form nil when the request carries no body.
	if err := c.Bind(&form); err != nil || form == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	form.ID = c.Param("id")
	if err := c.Validate(form); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.Update(c.Request().Context(), form)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// Delete handles DELETE /products/:id.
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")}, "Product deleted successfully")
}
