package context

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	e := echo.New()

	return e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestGetRequestID_UnsetReturnsEmpty(t *testing.T) {
	c := newEchoContext()

	// No middleware ran, so there is no id to report; repeated calls must
	// agree instead of minting fresh ids.
	assert.Empty(t, GetRequestID(c))
	assert.Empty(t, GetRequestID(c))
}

func TestGetRequestID_RoundTrip(t *testing.T) {
	c := newEchoContext()

	SetRequestID(c, "req-123")

	assert.Equal(t, "req-123", GetRequestID(c))
}
