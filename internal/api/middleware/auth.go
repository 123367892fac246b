package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/catalogo/catalog-api/internal/core/domain"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextCustomerID = "customer_id"
	ContextEmail      = "email"
	ContextRole       = "role"
	ContextToken      = "token"
)

// IdentityResolver turns a bearer token into the caller it was issued to.
type IdentityResolver interface {
	Identity(ctx context.Context, token string) (*domain.Identity, bool)
}

// Auth requires a bearer token that is both correctly signed and still
// present in the token store, and injects the caller's claims into context.
func Auth(tokens IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			scheme, token, ok := strings.Cut(authHeader, " ")
			token = strings.TrimSpace(token)
			if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			id, valid := tokens.Identity(c.Request().Context(), token)
			if !valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(ContextCustomerID, id.CustomerID)
			c.Set(ContextEmail, id.Email)
			c.Set(ContextRole, id.Role)
			c.Set(ContextToken, token)

			return next(c)
		}
	}
}
