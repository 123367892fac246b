package handler

import (
	"context"

	"github.com/catalogo/catalog-api/internal/core/domain"
	"github.com/catalogo/catalog-api/internal/core/ports"
)

// echoValidator adapts a ports.EntityValidator so Echo can call c.Validate(req).
type echoValidator struct {
	v ports.EntityValidator
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator(v ports.EntityValidator) *echoValidator {
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. The first failing field is
// reported as a domain validation error.
func (ev *echoValidator) Validate(i any) error {
	res := ev.v.Validate(context.Background(), i)
	if res.Valid() {
		return nil
	}
	f := res.First()
	return domain.ValidationError(f.Field, f.Message)
}
