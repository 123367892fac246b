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

// ProductService manages products on behalf of the calling customer. A caller
// only ever sees or changes products it owns.
type ProductService struct {
	repo      ports.ProductRepository
	validator ports.EntityValidator
	audit     ports.AuditRecorder
	logger    zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, validator ports.EntityValidator, audit ports.AuditRecorder, logger zerolog.Logger) *ProductService {
	if audit == nil {
		audit = ports.NopAuditRecorder{}
	}
	return &ProductService{repo: repo, validator: validator, audit: audit, logger: logger}
}

func (s *ProductService) List(ctx context.Context, callerID string) ([]*domain.Product, error) {
	if err := checkCaller(callerID); err != nil {
		return nil, err
	}
	return s.repo.GetByOwner(ctx, callerID)
}

func (s *ProductService) GetByID(ctx context.Context, callerID, id string) (*domain.Product, error) {
	if err := checkCaller(callerID); err != nil {
		return nil, err
	}
	return s.owned(ctx, callerID, id)
}

// Add creates a product owned by the caller. Any owner on the input is
// overwritten.
func (s *ProductService) Add(ctx context.Context, callerID string, product *domain.Product) error {
	if product == nil {
		return domain.ErrProductRequired
	}
	if err := checkCaller(callerID); err != nil {
		return err
	}

	product.OwnerID = callerID
	if err := s.validate(ctx, product); err != nil {
		return err
	}

	now := time.Now().UTC()
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := s.repo.Add(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("owner_id", callerID).Msg("failed to persist product")
		return err
	}

	metrics.ProductMutationsTotal.WithLabelValues("create").Inc()
	s.record(domain.AuditProductCreated, callerID, product.ID)
	return nil
}

// Update replaces a product the caller owns. Updates that change nothing are
// rejected.
func (s *ProductService) Update(ctx context.Context, callerID string, product *domain.Product) error {
	if product == nil {
		return domain.ErrProductRequired
	}
	if err := checkCaller(callerID); err != nil {
		return err
	}

	existing, err := s.owned(ctx, callerID, product.ID)
	if err != nil {
		return err
	}
	if err := s.validate(ctx, product); err != nil {
		return err
	}

	product.OwnerID = callerID
	if product.SameListing(existing) {
		return domain.ErrProductUnchanged
	}
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("product_id", product.ID).Msg("failed to update product")
		return err
	}

	metrics.ProductMutationsTotal.WithLabelValues("update").Inc()
	s.record(domain.AuditProductUpdated, callerID, product.ID)
	return nil
}

func (s *ProductService) Remove(ctx context.Context, callerID, id string) error {
	if err := checkCaller(callerID); err != nil {
		return err
	}
	if _, err := s.owned(ctx, callerID, id); err != nil {
		return err
	}

	if err := s.repo.RemoveByIDAndOwner(ctx, id, callerID); err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to remove product")
		return err
	}

	metrics.ProductMutationsTotal.WithLabelValues("remove").Inc()
	s.record(domain.AuditProductRemoved, callerID, id)
	return nil
}

// owned loads a product and checks it belongs to the caller. Missing and
// foreign products are indistinguishable to the caller.
func (s *ProductService) owned(ctx context.Context, callerID, id string) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrProductNotFound) {
		return nil, domain.ErrProductAccessDenied
	}
	if err != nil {
		return nil, err
	}
	if product.OwnerID != callerID {
		return nil, domain.ErrProductAccessDenied
	}
	return product, nil
}

func (s *ProductService) validate(ctx context.Context, product *domain.Product) error {
	return firstFailure(s.validator.Validate(ctx, product))
}

func (s *ProductService) record(action domain.AuditAction, actorID, subjectID string) {
	s.audit.Record(newAuditEvent(action, actorID, subjectID))
}

// checkCaller requires a caller id that parses as a UUID.
func checkCaller(callerID string) error {
	if callerID == "" {
		return domain.ErrNotAuthenticated
	}
	if _, err := uuid.Parse(callerID); err != nil {
		return domain.ErrNotAuthenticated
	}
	return nil
}
