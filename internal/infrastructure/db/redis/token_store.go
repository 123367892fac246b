package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const tokenKeyPrefix = "token:"

// TokenStore keeps live tokens as Redis keys that expire with the token.
// Key format: token:<sha256 of the token>, so raw tokens never sit in Redis.
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

func (s *TokenStore) Save(ctx context.Context, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("token store save: %w", err)
	}
	return nil
}

func (s *TokenStore) Remove(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, key(token)).Err(); err != nil {
		return fmt.Errorf("token store remove: %w", err)
	}
	return nil
}

func (s *TokenStore) Exists(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("token store exists: %w", err)
	}
	return n > 0, nil
}

func key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return tokenKeyPrefix + hex.EncodeToString(sum[:])
}
