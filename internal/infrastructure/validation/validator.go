// Package validation holds the field-level format rules for domain entities,
// expressed as go-playground/validator struct tags plus a few custom tags.
package validation

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/catalogo/catalog-api/internal/core/ports"
)

var (
	personNamePattern  = regexp.MustCompile(`^[A-Za-z .]*$`)
	taxIDPattern       = regexp.MustCompile(`^(\d{11}|\d{14})$`)
	phonePattern       = regexp.MustCompile(`^\d{11}$`)
	productNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9 .-]*$`)
)

// Validator implements ports.EntityValidator.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name so messages match the payload.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	mustRegister(v, "personname", personNamePattern)
	mustRegister(v, "taxid", taxIDPattern)
	mustRegister(v, "phone", phonePattern)
	mustRegister(v, "productname", productNamePattern)

	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, re *regexp.Regexp) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

// decimalValue exposes decimals to the numeric comparison tags.
func decimalValue(field reflect.Value) any {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}
	f, _ := d.Float64()
	return f
}

// Validate runs every rule and returns the failures in field order.
func (val *Validator) Validate(ctx context.Context, entity any) ports.ValidationResult {
	err := val.v.StructCtx(ctx, entity)
	if err == nil {
		return ports.ValidationResult{}
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return ports.ValidationResult{Failures: []ports.FieldFailure{{Message: err.Error()}}}
	}

	failures := make([]ports.FieldFailure, 0, len(ve))
	for _, fe := range ve {
		failures = append(failures, ports.FieldFailure{Field: fe.Field(), Message: fieldError(fe)})
	}
	return ports.ValidationResult{Failures: failures}
}

// fieldError converts a single FieldError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "uuid", "uuid4":
		return field + " must be a valid UUID"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "personname":
		return field + " must contain only letters, spaces or dots"
	case "taxid":
		return field + " must contain 11 or 14 digits"
	case "phone":
		return field + " must contain 11 digits including the area code"
	case "productname":
		return field + " must start with a letter and contain only letters, digits, spaces, dots or hyphens"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
