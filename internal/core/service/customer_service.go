package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/catalogo/catalog-api/internal/core/domain"
	"github.com/catalogo/catalog-api/internal/core/ports"
	"github.com/catalogo/catalog-api/internal/pkg/metrics"
)

// CustomerService implements account management and the login/logout flow.
type CustomerService struct {
	repo      ports.CustomerRepository
	validator ports.EntityValidator
	hasher    ports.PasswordHasher
	tokens    ports.TokenService
	audit     ports.AuditRecorder
	logger    zerolog.Logger
}

func NewCustomerService(
	repo ports.CustomerRepository,
	validator ports.EntityValidator,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	audit ports.AuditRecorder,
	logger zerolog.Logger,
) *CustomerService {
	if audit == nil {
		audit = ports.NopAuditRecorder{}
	}
	return &CustomerService{
		repo:      repo,
		validator: validator,
		hasher:    hasher,
		tokens:    tokens,
		audit:     audit,
		logger:    logger,
	}
}

func (s *CustomerService) GetAll(ctx context.Context) ([]*domain.Customer, error) {
	return s.repo.GetAll(ctx)
}

func (s *CustomerService) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CustomerService) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *CustomerService) GetByTaxID(ctx context.Context, taxID string) (*domain.Customer, error) {
	return s.repo.GetByTaxID(ctx, taxID)
}

// Add registers a new customer under a freshly generated id. Format rules are
// checked first, then tax id and email uniqueness, in that order.
func (s *CustomerService) Add(ctx context.Context, customer *domain.Customer) error {
	if err := s.validate(ctx, customer); err != nil {
		return err
	}
	if customer.Password == "" {
		return domain.ErrPasswordRequired
	}

	taken, err := s.exists(s.repo.GetByTaxID(ctx, customer.TaxID))
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrTaxIDRegistered
	}

	taken, err = s.exists(s.repo.GetByEmail(ctx, customer.Email))
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrEmailRegistered
	}

	hash, err := s.hasher.Hash(customer.Password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	customer.ID = uuid.NewString()
	customer.PasswordHash = hash
	customer.Password = ""
	customer.CreatedAt = now
	customer.UpdatedAt = now

	if err := s.repo.Add(ctx, customer); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist customer")
		return err
	}

	metrics.CustomersRegisteredTotal.Inc()
	s.record(domain.AuditCustomerRegistered, "", customer.ID)
	s.logger.Info().Str("customer_id", customer.ID).Str("role", customer.Role).Msg("customer registered")
	return nil
}

// Update replaces the profile of an existing customer. The existing record is
// resolved by id if present, otherwise by email, otherwise by tax id. The stored password hash is kept
// unless a new password is supplied.
func (s *CustomerService) Update(ctx context.Context, customer *domain.Customer) error {
	if err := s.validate(ctx, customer); err != nil {
		return err
	}

	existing, err := s.resolve(ctx, customer)
	if err != nil {
		return err
	}
	if existing.SameProfile(customer) {
		return domain.ErrCustomerUnchanged
	}

	customer.ID = existing.ID
	customer.CreatedAt = existing.CreatedAt
	customer.UpdatedAt = time.Now().UTC()
	customer.PasswordHash = existing.PasswordHash
	if customer.Password != "" {
		hash, err := s.hasher.Hash(customer.Password)
		if err != nil {
			return err
		}
		customer.PasswordHash = hash
		customer.Password = ""
	}

	if err := s.repo.Update(ctx, customer); err != nil {
		s.logger.Error().Err(err).Str("customer_id", customer.ID).Msg("failed to update customer")
		return err
	}

	s.record(domain.AuditCustomerUpdated, "", customer.ID)
	return nil
}

// Remove deletes a customer. Only records whose stored role is admin may be
// removed; the caller's own role is not consulted.
func (s *CustomerService) Remove(ctx context.Context, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrCustomerNotFound) {
		return domain.ErrRemoveMissing
	}
	if err != nil {
		return err
	}
	if !existing.IsAdmin() {
		return domain.ErrAdminRequired
	}

	if err := s.repo.Remove(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("customer_id", id).Msg("failed to remove customer")
		return err
	}

	s.record(domain.AuditCustomerRemoved, "", id)
	s.logger.Info().Str("customer_id", id).Msg("customer removed")
	return nil
}

// Login checks the credentials and issues a bearer token. Unknown emails and
// wrong passwords produce the same error.
func (s *CustomerService) Login(ctx context.Context, email, password string) (string, error) {
	customer, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrCustomerNotFound) {
		s.loginFailed("")
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if !s.hasher.Verify(password, customer.PasswordHash) {
		s.loginFailed(customer.ID)
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, customer)
	if err != nil {
		s.logger.Error().Err(err).Str("customer_id", customer.ID).Msg("failed to issue token")
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.record(domain.AuditLoginSucceeded, customer.ID, customer.ID)
	return token, nil
}

// Logout revokes a token that no longer validates. A token that is still
// valid is rejected and stays live.
func (s *CustomerService) Logout(ctx context.Context, token string) error {
	if s.tokens.IsValid(ctx, token) {
		return domain.ErrLogoutRejected
	}
	if err := s.tokens.Revoke(ctx, token); err != nil {
		return err
	}
	s.record(domain.AuditLogout, "", "")
	return nil
}

func (s *CustomerService) validate(ctx context.Context, customer *domain.Customer) error {
	return firstFailure(s.validator.Validate(ctx, customer))
}

// resolve finds the stored record the update targets. Only the first
// non-empty identifier among id, email and tax id is consulted; a miss on it
// does not fall through to the next one.
func (s *CustomerService) resolve(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	var (
		found *domain.Customer
		err   error
	)
	switch {
	case customer.ID != "":
		found, err = s.repo.GetByID(ctx, customer.ID)
	case customer.Email != "":
		found, err = s.repo.GetByEmail(ctx, customer.Email)
	case customer.TaxID != "":
		found, err = s.repo.GetByTaxID(ctx, customer.TaxID)
	default:
		return nil, domain.ErrCustomerMissing
	}
	if errors.Is(err, domain.ErrCustomerNotFound) {
		return nil, domain.ErrCustomerUnresolved
	}
	if err != nil {
		return nil, err
	}
	return found, nil
}

// exists turns a lookup result into a presence flag.
func (s *CustomerService) exists(_ *domain.Customer, err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrCustomerNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (s *CustomerService) loginFailed(customerID string) {
	metrics.LoginsTotal.WithLabelValues("failure").Inc()
	s.record(domain.AuditLoginFailed, "", customerID)
}

func (s *CustomerService) record(action domain.AuditAction, actorID, subjectID string) {
	s.audit.Record(newAuditEvent(action, actorID, subjectID))
}
