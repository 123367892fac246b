package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/catalogo/catalog-api/internal/core/domain"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]*domain.Product, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *ProductRepository) GetByOwner(ctx context.Context, ownerID string) ([]*domain.Product, error) {
	if !validID(ownerID) {
		return []*domain.Product{}, nil
	}
	return r.find(r.db.WithContext(ctx).Where("owner_id = ?", ownerID))
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if !validID(id) {
		return nil, domain.ErrProductNotFound
	}
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *ProductRepository) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.Product, error) {
	if !validID(id, ownerID) {
		return nil, domain.ErrProductNotFound
	}
	return r.first(r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID))
}

func (r *ProductRepository) Add(ctx context.Context, product *domain.Product) error {
	if product.OwnerID == "" {
		return domain.ErrOwnerRequired
	}
	m := toProductModel(product)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if product.OwnerID == "" {
		return domain.ErrOwnerRequired
	}
	if !validID(product.ID) {
		return domain.ErrProductNotFound
	}
	m := toProductModel(product)
	res := r.db.WithContext(ctx).Model(&ProductModel{}).Where("id = ?", product.ID).Select("*").Updates(&m)
	if res.Error != nil {
		return fmt.Errorf("update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Remove(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	if err := r.db.WithContext(ctx).Delete(&ProductModel{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepository) RemoveByIDAndOwner(ctx context.Context, id, ownerID string) error {
	if !validID(id, ownerID) {
		return nil
	}
	if err := r.db.WithContext(ctx).Delete(&ProductModel{}, "id = ? AND owner_id = ?", id, ownerID).Error; err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepository) find(q *gorm.DB) ([]*domain.Product, error) {
	var models []ProductModel
	if err := q.Order("created_at").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]*domain.Product, 0, len(models))
	for _, m := range models {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *ProductRepository) first(q *gorm.DB) (*domain.Product, error) {
	var m ProductModel
	if err := q.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return m.toDomain(), nil
}
