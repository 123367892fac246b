package ports

import (
	"context"

	"github.com/catalogo/catalog-api/internal/core/domain"
)

// ProductRepository persists products. Lookups that find nothing return
// domain.ErrProductNotFound; writes with an empty owner return
// domain.ErrOwnerRequired.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]*domain.Product, error)
	GetByOwner(ctx context.Context, ownerID string) ([]*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.Product, error)
	Add(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Remove(ctx context.Context, id string) error
	RemoveByIDAndOwner(ctx context.Context, id, ownerID string) error
}
