// Package memory provides process-local implementations of the storage
// ports, used for development and tests.
package memory

import (
	"context"
	"sync"
	"time"
)

// sweepEvery controls how many saves happen between expired-entry sweeps.
const sweepEvery = 256

// TokenStore is a mutex-guarded set of live tokens. Entries saved with a
// ttl disappear once it elapses.
type TokenStore struct {
	mu     sync.RWMutex
	tokens map[string]time.Time // zero time = no expiry
	saves  int
	now    func() time.Time
}

func NewTokenStore() *TokenStore {
	return &TokenStore{tokens: make(map[string]time.Time), now: time.Now}
}

func (s *TokenStore) Save(_ context.Context, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var expires time.Time
	if ttl > 0 {
		expires = s.now().Add(ttl)
	}
	s.tokens[token] = expires

	s.saves++
	if s.saves%sweepEvery == 0 {
		s.sweepLocked()
	}
	return nil
}

func (s *TokenStore) Remove(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}

func (s *TokenStore) Exists(_ context.Context, token string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	expires, ok := s.tokens[token]
	if !ok {
		return false, nil
	}
	return expires.IsZero() || s.now().Before(expires), nil
}

// Len reports the number of tracked entries, expired ones included.
func (s *TokenStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tokens)
}

func (s *TokenStore) sweepLocked() {
	now := s.now()
	for token, expires := range s.tokens {
		if !expires.IsZero() && !now.Before(expires) {
			delete(s.tokens, token)
		}
	}
}
