package ports

import (
	"context"

	"github.com/catalogo/catalog-api/internal/core/domain"
)

// ProductService scopes every operation to the calling customer.
type ProductService interface {
	List(ctx context.Context, callerID string) ([]*domain.Product, error)
	GetByID(ctx context.Context, callerID, id string) (*domain.Product, error)
	Add(ctx context.Context, callerID string, product *domain.Product) error
	Update(ctx context.Context, callerID string, product *domain.Product) error
	Remove(ctx context.Context, callerID, id string) error
}
