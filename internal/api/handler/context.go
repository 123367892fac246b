package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/catalogo/catalog-api/internal/api/middleware"
)

// callerID returns the customer id injected by the Auth middleware. An empty
// result is passed through so the product service rejects it itself.
func callerID(c echo.Context) string {
	id, _ := c.Get(middleware.ContextCustomerID).(string)
	return id
}
