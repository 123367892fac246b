package domain

import "time"

// Identity is the authenticated caller extracted from a valid bearer token.
type Identity struct {
	CustomerID string
	Email      string
	Role       string
	TokenID    string
	ExpiresAt  time.Time
}
