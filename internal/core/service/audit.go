package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/catalogo/catalog-api/internal/core/domain"
	"github.com/catalogo/catalog-api/internal/core/ports"
)

func newAuditEvent(action domain.AuditAction, actorID, subjectID string) domain.AuditEvent {
	return domain.AuditEvent{
		ID:         uuid.NewString(),
		Action:     action,
		ActorID:    actorID,
		SubjectID:  subjectID,
		OccurredAt: time.Now().UTC(),
	}
}

// firstFailure reports only the first failed rule of a validation run.
func firstFailure(result ports.ValidationResult) error {
	if result.Valid() {
		return nil
	}
	first := result.First()
	return domain.ValidationError(first.Field, first.Message)
}
