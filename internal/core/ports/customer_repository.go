package ports

import (
	"context"

	"github.com/catalogo/catalog-api/internal/core/domain"
)

// CustomerRepository persists customers. Lookups that find nothing return
// domain.ErrCustomerNotFound.
type CustomerRepository interface {
	GetAll(ctx context.Context) ([]*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetByTaxID(ctx context.Context, taxID string) (*domain.Customer, error)
	Add(ctx context.Context, customer *domain.Customer) error
	Update(ctx context.Context, customer *domain.Customer) error
	Remove(ctx context.Context, id string) error
}
