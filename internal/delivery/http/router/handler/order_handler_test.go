package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptyBodyUpdateContext builds an update request without a body, the shape a
// client sends when it forgets the payload.
func emptyBodyUpdateContext(path, id string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, path, nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)

	return c
}

func TestOrderHandler_Update_EmptyBodyIsBadRequest(t *testing.T) {
	c := emptyBodyUpdateContext("/orders/64f000000000000000000010", "64f000000000000000000010")
	h := NewOrderHandler(nil)

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusBadRequest, c.Response().Status)
}

func TestCustomerHandler_Update_EmptyBodyIsBadRequest(t *testing.T) {
	c := emptyBodyUpdateContext("/customers/64f000000000000000000001", "64f000000000000000000001")
	h := NewCustomerHandler(nil)

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusBadRequest, c.Response().Status)
}

func TestProductHandler_Update_EmptyBodyIsBadRequest(t *testing.T) {
	c := emptyBodyUpdateContext("/products/64f000000000000000000002", "64f000000000000000000002")
	h := NewProductHandler(nil)

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusBadRequest, c.Response().Status)
}
