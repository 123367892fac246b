package ports

import (
	"context"

	"github.com/catalogo/catalog-api/internal/core/domain"
)

// AuditRecorder accepts audit events without blocking the caller.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}

// AuditRepository appends audit events to durable storage.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// NopAuditRecorder discards every event.
type NopAuditRecorder struct{}

func (NopAuditRecorder) Record(domain.AuditEvent) {}
