package ports

import (
	"context"

	"github.com/catalogo/catalog-api/internal/core/domain"
)

type CustomerService interface {
	GetAll(ctx context.Context) ([]*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetByTaxID(ctx context.Context, taxID string) (*domain.Customer, error)
	Add(ctx context.Context, customer *domain.Customer) error
	Update(ctx context.Context, customer *domain.Customer) error
	Remove(ctx context.Context, id string) error
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, token string) error
}
