package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/catalogo/catalog-api/internal/core/domain"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) GetAll(ctx context.Context) ([]*domain.Customer, error) {
	var models []CustomerModel
	if err := r.db.WithContext(ctx).Order("created_at").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	out := make([]*domain.Customer, 0, len(models))
	for _, m := range models {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	if !validID(id) {
		return nil, domain.ErrCustomerNotFound
	}
	return r.first(ctx, "id = ?", id)
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *CustomerRepository) GetByTaxID(ctx context.Context, taxID string) (*domain.Customer, error) {
	return r.first(ctx, "tax_id = ?", taxID)
}

func (r *CustomerRepository) Add(ctx context.Context, customer *domain.Customer) error {
	m := toCustomerModel(customer)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrCustomerExists
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	if !validID(customer.ID) {
		return domain.ErrCustomerNotFound
	}
	m := toCustomerModel(customer)
	res := r.db.WithContext(ctx).Model(&CustomerModel{}).Where("id = ?", customer.ID).Select("*").Updates(&m)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrCustomerExists
		}
		return fmt.Errorf("update customer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) Remove(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	if err := r.db.WithContext(ctx).Delete(&CustomerModel{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) first(ctx context.Context, query string, arg string) (*domain.Customer, error) {
	var m CustomerModel
	if err := r.db.WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return m.toDomain(), nil
}
