package ports

import (
	"context"
	"time"
)

// TokenStore tracks which issued tokens are still live. Save and Remove are
// idempotent. A ttl of zero keeps the entry until it is removed.
type TokenStore interface {
	Save(ctx context.Context, token string, ttl time.Duration) error
	Remove(ctx context.Context, token string) error
	Exists(ctx context.Context, token string) (bool, error)
}
