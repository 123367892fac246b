package redis

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

// newTestStore connects to the Redis named by REDIS_ADDR, skipping when unset.
func newTestStore(t *testing.T) *TokenStore {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	client, err := Connect(context.Background(), Config{Addr: addr})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return NewTokenStore(client)
}

func TestKey_HashesToken(t *testing.T) {
	k := key("header.payload.signature")
	if !strings.HasPrefix(k, tokenKeyPrefix) || strings.Contains(k, "payload") {
		t.Fatalf("unexpected key %q", k)
	}
	if len(k) != len(tokenKeyPrefix)+64 {
		t.Fatalf("expected hex sha256 suffix, got %q", k)
	}
	if key("a") == key("b") {
		t.Fatalf("distinct tokens must map to distinct keys")
	}
}

func TestTokenStore_Lifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	token := "test-" + uuid.NewString()

	if err := s.Save(ctx, token, time.Minute); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if ok, err := s.Exists(ctx, token); err != nil || !ok {
		t.Fatalf("Exists after save: %v %v", ok, err)
	}
	if err := s.Remove(ctx, token); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if ok, _ := s.Exists(ctx, token); ok {
		t.Fatalf("token still present after remove")
	}
	if err := s.Remove(ctx, token); err != nil {
		t.Fatalf("second Remove should be a no-op, got %v", err)
	}
}

func TestTokenStore_Expires(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	token := "test-" + uuid.NewString()

	_ = s.Save(ctx, token, 50*time.Millisecond)
	time.Sleep(150 * time.Millisecond)
	if ok, _ := s.Exists(ctx, token); ok {
		t.Fatalf("token should have expired")
	}
}
