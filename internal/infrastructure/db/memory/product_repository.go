package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/catalogo/catalog-api/internal/core/domain"
)

type ProductRepository struct {
	mu   sync.RWMutex
	byID map[string]domain.Product
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{byID: make(map[string]domain.Product)}
}

func (r *ProductRepository) GetAll(_ context.Context) ([]*domain.Product, error) {
	return r.filter(func(*domain.Product) bool { return true }), nil
}

func (r *ProductRepository) GetByOwner(_ context.Context, ownerID string) ([]*domain.Product, error) {
	return r.filter(func(p *domain.Product) bool { return p.OwnerID == ownerID }), nil
}

func (r *ProductRepository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

func (r *ProductRepository) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.Product, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != ownerID {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (r *ProductRepository) Add(_ context.Context, product *domain.Product) error {
	if product.OwnerID == "" {
		return domain.ErrOwnerRequired
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[product.ID] = *product
	return nil
}

func (r *ProductRepository) Update(_ context.Context, product *domain.Product) error {
	if product.OwnerID == "" {
		return domain.ErrOwnerRequired
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[product.ID]; !ok {
		return domain.ErrProductNotFound
	}
	r.byID[product.ID] = *product
	return nil
}

func (r *ProductRepository) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}

func (r *ProductRepository) RemoveByIDAndOwner(_ context.Context, id, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.byID[id]; ok && p.OwnerID == ownerID {
		delete(r.byID, id)
	}
	return nil
}

func (r *ProductRepository) filter(keep func(*domain.Product) bool) []*domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Product, 0)
	for _, p := range r.byID {
		p := p
		if keep(&p) {
			out = append(out, &p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}
