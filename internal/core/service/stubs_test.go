package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/catalogo/catalog-api/internal/core/domain"
	"github.com/catalogo/catalog-api/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Customer repository stub
// ---------------------------------------------------------------------------

type stubCustomerRepo struct {
	byID      map[string]*domain.Customer
	addCalls  int
	updCalls  int
	remCalls  int
	lastSaved *domain.Customer
	lookupErr error // if set, every lookup returns this error
}

func newStubCustomerRepo(seed ...*domain.Customer) *stubCustomerRepo {
	r := &stubCustomerRepo{byID: make(map[string]*domain.Customer)}
	for _, c := range seed {
		r.byID[c.ID] = cloneCustomer(c)
	}
	return r
}

func cloneCustomer(c *domain.Customer) *domain.Customer {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubCustomerRepo) GetAll(context.Context) ([]*domain.Customer, error) {
	out := make([]*domain.Customer, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, cloneCustomer(c))
	}
	return out, nil
}

func (r *stubCustomerRepo) find(match func(*domain.Customer) bool) (*domain.Customer, error) {
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	for _, c := range r.byID {
		if match(c) {
			return cloneCustomer(c), nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

func (r *stubCustomerRepo) GetByID(_ context.Context, id string) (*domain.Customer, error) {
	return r.find(func(c *domain.Customer) bool { return c.ID == id })
}

func (r *stubCustomerRepo) GetByEmail(_ context.Context, email string) (*domain.Customer, error) {
	return r.find(func(c *domain.Customer) bool { return c.Email == email })
}

func (r *stubCustomerRepo) GetByTaxID(_ context.Context, taxID string) (*domain.Customer, error) {
	return r.find(func(c *domain.Customer) bool { return c.TaxID == taxID })
}

func (r *stubCustomerRepo) Add(_ context.Context, c *domain.Customer) error {
	r.addCalls++
	r.lastSaved = cloneCustomer(c)
	r.byID[c.ID] = cloneCustomer(c)
	return nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *domain.Customer) error {
	r.updCalls++
	r.lastSaved = cloneCustomer(c)
	r.byID[c.ID] = cloneCustomer(c)
	return nil
}

func (r *stubCustomerRepo) Remove(_ context.Context, id string) error {
	r.remCalls++
	delete(r.byID, id)
	return nil
}

// ---------------------------------------------------------------------------
// Product repository stub
// ---------------------------------------------------------------------------

type stubProductRepo struct {
	byID      map[string]*domain.Product
	addCalls  int
	updCalls  int
	remCalls  int
	lastSaved *domain.Product
}

func newStubProductRepo(seed ...*domain.Product) *stubProductRepo {
	r := &stubProductRepo{byID: make(map[string]*domain.Product)}
	for _, p := range seed {
		r.byID[p.ID] = cloneProduct(p)
	}
	return r
}

func cloneProduct(p *domain.Product) *domain.Product {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubProductRepo) GetAll(context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, cloneProduct(p))
	}
	return out, nil
}

func (r *stubProductRepo) GetByOwner(_ context.Context, ownerID string) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, p := range r.byID {
		if p.OwnerID == ownerID {
			out = append(out, cloneProduct(p))
		}
	}
	return out, nil
}

func (r *stubProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return cloneProduct(p), nil
}

func (r *stubProductRepo) GetByIDAndOwner(_ context.Context, id, ownerID string) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok || p.OwnerID != ownerID {
		return nil, domain.ErrProductNotFound
	}
	return cloneProduct(p), nil
}

func (r *stubProductRepo) Add(_ context.Context, p *domain.Product) error {
	r.addCalls++
	r.lastSaved = cloneProduct(p)
	r.byID[p.ID] = cloneProduct(p)
	return nil
}

func (r *stubProductRepo) Update(_ context.Context, p *domain.Product) error {
	r.updCalls++
	r.lastSaved = cloneProduct(p)
	r.byID[p.ID] = cloneProduct(p)
	return nil
}

func (r *stubProductRepo) Remove(_ context.Context, id string) error {
	r.remCalls++
	delete(r.byID, id)
	return nil
}

func (r *stubProductRepo) RemoveByIDAndOwner(_ context.Context, id, ownerID string) error {
	r.remCalls++
	if p, ok := r.byID[id]; ok && p.OwnerID == ownerID {
		delete(r.byID, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Collaborator stubs
// ---------------------------------------------------------------------------

// stubValidator passes everything unless fail is set.
type stubValidator struct {
	fail  []ports.FieldFailure
	calls int
}

func (v *stubValidator) Validate(context.Context, any) ports.ValidationResult {
	v.calls++
	return ports.ValidationResult{Failures: v.fail}
}

type stubHasher struct {
	hashCalls int
}

func (h *stubHasher) Hash(password string) (string, error) {
	h.hashCalls++
	return "hashed:" + password, nil
}

func (h *stubHasher) Verify(password, hash string) bool {
	return hash == "hashed:"+password
}

type stubTokenService struct {
	valid    map[string]bool
	issueErr error
	issued   int
	revoked  []string
}

func newStubTokenService() *stubTokenService {
	return &stubTokenService{valid: make(map[string]bool)}
}

func (s *stubTokenService) Issue(_ context.Context, c *domain.Customer) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}
	s.issued++
	token := "token-for-" + c.ID
	s.valid[token] = true
	return token, nil
}

func (s *stubTokenService) Save(_ context.Context, token string) error {
	s.valid[token] = true
	return nil
}

func (s *stubTokenService) Revoke(_ context.Context, token string) error {
	s.revoked = append(s.revoked, token)
	delete(s.valid, token)
	return nil
}

func (s *stubTokenService) IsValid(_ context.Context, token string) bool {
	return s.valid[token]
}

func (s *stubTokenService) Identity(_ context.Context, token string) (*domain.Identity, bool) {
	if !s.valid[token] {
		return nil, false
	}
	return &domain.Identity{CustomerID: strings.TrimPrefix(token, "token-for-")}, true
}

type recordingAudit struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (a *recordingAudit) Record(e domain.AuditEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, e)
}

func (a *recordingAudit) actions() []domain.AuditAction {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.AuditAction, len(a.events))
	for i, e := range a.events {
		out[i] = e.Action
	}
	return out
}

// stubTokenStore is a concurrency-safe token set with optional failures.
type stubTokenStore struct {
	mu        sync.Mutex
	tokens    map[string]time.Duration
	saveErr   error
	existsErr error
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{tokens: make(map[string]time.Duration)}
}

func (s *stubTokenStore) Save(_ context.Context, token string, ttl time.Duration) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = ttl
	return nil
}

func (s *stubTokenStore) Remove(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}

func (s *stubTokenStore) Exists(_ context.Context, token string) (bool, error) {
	if s.existsErr != nil {
		return false, s.existsErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[token]
	return ok, nil
}

func (s *stubTokenStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens)
}
