package ports

import (
	"context"

	"github.com/catalogo/catalog-api/internal/core/domain"
)

// TokenService issues, tracks and validates bearer tokens. IsValid and
// Identity never fail loudly: any problem yields false.
type TokenService interface {
	Issue(ctx context.Context, customer *domain.Customer) (string, error)
	Save(ctx context.Context, token string) error
	Revoke(ctx context.Context, token string) error
	IsValid(ctx context.Context, token string) bool
	Identity(ctx context.Context, token string) (*domain.Identity, bool)
}
