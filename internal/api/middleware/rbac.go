package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/catalogo/catalog-api/internal/core/domain"
)

// RequireRole lets a request through only when Auth resolved a customer whose
// role claim is one of roles. Tokens issued for a role that has since been
// retired, or carrying no subject, are refused with a forbidden-kind error so
// the central error handler renders them.
func RequireRole(log zerolog.Logger, roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			customerID, _ := c.Get(ContextCustomerID).(string)
			role, _ := c.Get(ContextRole).(string)
			if customerID == "" {
				return domain.ErrNotAuthenticated
			}
			if _, ok := allowed[role]; !ok {
				log.Warn().
					Str("customer_id", customerID).
					Str("role", role).
					Str("path", c.Path()).
					Msg("role not permitted")
				return domain.ErrRoleNotPermitted
			}
			return next(c)
		}
	}
}
