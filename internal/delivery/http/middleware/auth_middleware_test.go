package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliverycontext "salesapi/internal/delivery/context"
	mockSvc "salesapi/internal/mocks/service"
)

func runIdentify(t *testing.T, m *AuthMiddleware, authHeader string) (identity string, called bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.Identify(func(c echo.Context) error {
		called = true
		identity = deliverycontext.GetIdentity(c.Request().Context())

		return nil
	})

	require.NoError(t, handler(c))

	return identity, called
}

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockSvc.MockTokenService) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthMiddleware(tokenSvc, logger), tokenSvc
}

func TestIdentify_NoHeaderStaysAnonymous(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	identity, called := runIdentify(t, m, "")

	assert.True(t, called)
	assert.Empty(t, identity)
}

func TestIdentify_NullLiteralStaysAnonymous(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	identity, called := runIdentify(t, m, "Bearer null")

	assert.True(t, called)
	assert.Empty(t, identity)
}

func TestIdentify_InvalidTokenProceedsAnonymously(t *testing.T) {
	m, tokenSvc := newTestAuthMiddleware(t)
	tokenSvc.On("Verify", "garbage").Return("", errors.New("token is malformed"))

	identity, called := runIdentify(t, m, "Bearer garbage")

	// A bad token must never reject the request.
	assert.True(t, called)
	assert.Empty(t, identity)
}

func TestIdentify_ValidTokenAttachesIdentity(t *testing.T) {
	m, tokenSvc := newTestAuthMiddleware(t)
	tokenSvc.On("Verify", "signed.jwt.token").Return("ana", nil)

	identity, called := runIdentify(t, m, "Bearer signed.jwt.token")

	assert.True(t, called)
	assert.Equal(t, "ana", identity)
}
