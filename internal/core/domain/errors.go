package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every business error unwraps to exactly one of these so the
// transport layer can map it to a status code with errors.Is.
var (
	ErrValidation      = errors.New("validation failed")
	ErrNoOpUpdate      = fmt.Errorf("%w: nothing to update", ErrValidation)
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("access forbidden")
	ErrUnauthenticated = errors.New("not authenticated")
)

// Error is a business rule violation. Message is safe to show to clients.
type Error struct {
	Kind    error
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// ValidationError builds a validation failure for a single field.
func ValidationError(field, message string) *Error {
	return &Error{Kind: ErrValidation, Field: field, Message: message}
}

// Repository lookups.
var (
	ErrCustomerNotFound = &Error{Kind: ErrNotFound, Message: "customer not found"}
	ErrProductNotFound  = &Error{Kind: ErrNotFound, Message: "product not found"}
	ErrCustomerExists   = &Error{Kind: ErrValidation, Message: "customer already registered"}
	ErrOwnerRequired    = &Error{Kind: ErrValidation, Field: "owner_id", Message: "product owner is required"}
)

// Customer rules.
var (
	ErrTaxIDRegistered    = &Error{Kind: ErrValidation, Field: "tax_id", Message: "tax-id already registered"}
	ErrEmailRegistered    = &Error{Kind: ErrValidation, Field: "email", Message: "email already registered"}
	ErrPasswordRequired   = &Error{Kind: ErrValidation, Field: "password", Message: "password is required"}
	ErrCustomerMissing    = &Error{Kind: ErrNotFound, Message: "customer does not exist"}
	ErrCustomerUnresolved = &Error{Kind: ErrNotFound, Message: "customer does not exist / wrong email"}
	ErrCustomerUnchanged  = &Error{Kind: ErrNoOpUpdate, Message: "cannot update without changing something"}
	ErrRemoveMissing      = &Error{Kind: ErrNotFound, Message: "cannot remove a user that does not exist"}
	ErrAdminRequired      = &Error{Kind: ErrForbidden, Message: "only an admin may remove a user"}
	ErrRoleNotPermitted   = &Error{Kind: ErrForbidden, Message: "role not permitted"}
	ErrInvalidCredentials = &Error{Kind: ErrUnauthenticated, Message: "invalid email or password"}
	ErrLogoutRejected     = &Error{Kind: ErrValidation, Message: "invalid or expired token"}
)

// Product rules.
var (
	ErrNotAuthenticated    = &Error{Kind: ErrUnauthenticated, Message: "user not authenticated"}
	ErrProductRequired     = &Error{Kind: ErrValidation, Message: "product is required"}
	ErrProductAccessDenied = &Error{Kind: ErrNotFound, Message: "product not found or access denied"}
	ErrProductUnchanged    = &Error{Kind: ErrNoOpUpdate, Message: "cannot update without modifications"}
)

// Token issuance.
var ErrSigningKeyMissing = errors.New("token signing key is not configured")
