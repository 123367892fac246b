package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/catalogo/catalog-api/internal/core/domain"
)

// CustomerRepository keeps customers in a map keyed by id and enforces the
// same unique email and tax id constraints as the database backends.
type CustomerRepository struct {
	mu   sync.RWMutex
	byID map[string]domain.Customer
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{byID: make(map[string]domain.Customer)}
}

func (r *CustomerRepository) GetAll(_ context.Context) ([]*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Customer, 0, len(r.byID))
	for _, c := range r.byID {
		c := c
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *CustomerRepository) GetByID(_ context.Context, id string) (*domain.Customer, error) {
	return r.find(func(c *domain.Customer) bool { return c.ID == id })
}

func (r *CustomerRepository) GetByEmail(_ context.Context, email string) (*domain.Customer, error) {
	return r.find(func(c *domain.Customer) bool { return c.Email == email })
}

func (r *CustomerRepository) GetByTaxID(_ context.Context, taxID string) (*domain.Customer, error) {
	return r.find(func(c *domain.Customer) bool { return c.TaxID == taxID })
}

func (r *CustomerRepository) Add(_ context.Context, customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[customer.ID]; ok || r.conflictsLocked(customer) {
		return domain.ErrCustomerExists
	}
	r.byID[customer.ID] = *customer
	return nil
}

func (r *CustomerRepository) Update(_ context.Context, customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[customer.ID]; !ok {
		return domain.ErrCustomerNotFound
	}
	if r.conflictsLocked(customer) {
		return domain.ErrCustomerExists
	}
	r.byID[customer.ID] = *customer
	return nil
}

func (r *CustomerRepository) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}

func (r *CustomerRepository) find(match func(*domain.Customer) bool) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.byID {
		if match(&c) {
			found := c
			return &found, nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

// conflictsLocked reports whether another customer already uses the email
// or tax id.
func (r *CustomerRepository) conflictsLocked(customer *domain.Customer) bool {
	for id, c := range r.byID {
		if id == customer.ID {
			continue
		}
		if c.Email == customer.Email || c.TaxID == customer.TaxID {
			return true
		}
	}
	return false
}
