package ports

import "context"

// FieldFailure describes one failed field rule.
type FieldFailure struct {
	Field   string
	Message string
}

// ValidationResult holds the failures of a validation run in field order.
type ValidationResult struct {
	Failures []FieldFailure
}

func (r ValidationResult) Valid() bool { return len(r.Failures) == 0 }

// First returns the first failure. Only meaningful when !Valid().
func (r ValidationResult) First() FieldFailure {
	if len(r.Failures) == 0 {
		return FieldFailure{}
	}
	return r.Failures[0]
}

// EntityValidator checks field-level format rules of a domain entity.
type EntityValidator interface {
	Validate(ctx context.Context, entity any) ValidationResult
}
