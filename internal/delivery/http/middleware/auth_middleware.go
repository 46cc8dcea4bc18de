package middleware

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "salesapi/internal/delivery/context"
	"salesapi/internal/domain/service"
)

// AuthMiddleware decodes the bearer token into a request identity. Unlike a
// conventional gate it never rejects: an absent, "null" or invalid token
// leaves the request anonymous and lets the use cases decide whether an
// identity is required.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Identify verifies the bearer token, if any, and attaches the decoded login
// name to the request context. Verification failures are logged and the
// request proceeds anonymously.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Browser clients send the literal string "null" when local storage
		// holds no token; treat it the same as no header at all.
		if tokenString == "" || tokenString == "null" {
			return next(c)
		}

		login, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			m.logger.Warn("Bearer token rejected, proceeding anonymously",
				slog.String("request_id", deliverycontext.GetRequestID(c)),
				slog.Any("error", err),
			)

			return next(c)
		}

		c.Set(string(deliverycontext.KeyIdentity), login)
		ctx := deliverycontext.WithIdentity(c.Request().Context(), login)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
