package domain

import "time"

// AuditAction names a security-relevant change recorded in the audit trail.
type AuditAction string

const (
	AuditCustomerRegistered AuditAction = "customer.registered"
	AuditCustomerUpdated    AuditAction = "customer.updated"
	AuditCustomerRemoved    AuditAction = "customer.removed"
	AuditLoginSucceeded     AuditAction = "customer.login"
	AuditLoginFailed        AuditAction = "customer.login_failed"
	AuditLogout             AuditAction = "customer.logout"
	AuditProductCreated     AuditAction = "product.created"
	AuditProductUpdated     AuditAction = "product.updated"
	AuditProductRemoved     AuditAction = "product.removed"
)

// AuditEvent is an append-only record of who did what to which subject.
// ActorID is empty when the actor is anonymous (registration, failed login).
type AuditEvent struct {
	ID         string      `json:"id"`
	Action     AuditAction `json:"action"`
	ActorID    string      `json:"actor_id,omitempty"`
	SubjectID  string      `json:"subject_id,omitempty"`
	Detail     string      `json:"detail,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}
