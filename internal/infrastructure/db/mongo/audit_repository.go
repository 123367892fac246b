package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/catalogo/catalog-api/internal/core/domain"
)

type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDocument struct {
	ID         string    `bson:"_id"`
	Action     string    `bson:"action"`
	ActorID    string    `bson:"actor_id,omitempty"`
	SubjectID  string    `bson:"subject_id,omitempty"`
	Detail     string    `bson:"detail,omitempty"`
	OccurredAt time.Time `bson:"occurred_at"`
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	doc := auditDocument{
		ID:         event.ID,
		Action:     string(event.Action),
		ActorID:    event.ActorID,
		SubjectID:  event.SubjectID,
		Detail:     event.Detail,
		OccurredAt: event.OccurredAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
