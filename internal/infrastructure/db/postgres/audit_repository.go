package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/catalogo/catalog-api/internal/core/domain"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	m := AuditEventModel{
		ID:         event.ID,
		Action:     string(event.Action),
		ActorID:    event.ActorID,
		SubjectID:  event.SubjectID,
		Detail:     event.Detail,
		OccurredAt: event.OccurredAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
