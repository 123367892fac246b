package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestTokenStore_SaveExistsRemove(t *testing.T) {
	s := NewTokenStore()
	ctx := context.Background()

	if ok, _ := s.Exists(ctx, "t1"); ok {
		t.Fatalf("unknown token reported present")
	}
	_ = s.Save(ctx, "t1", time.Hour)
	_ = s.Save(ctx, "t1", time.Hour)
	if ok, _ := s.Exists(ctx, "t1"); !ok {
		t.Fatalf("saved token reported absent")
	}
	if s.Len() != 1 {
		t.Fatalf("saving twice should keep one entry, got %d", s.Len())
	}

	_ = s.Remove(ctx, "t1")
	if err := s.Remove(ctx, "t1"); err != nil {
		t.Fatalf("removing an absent token should be a no-op, got %v", err)
	}
	if ok, _ := s.Exists(ctx, "t1"); ok {
		t.Fatalf("removed token reported present")
	}
}

func TestTokenStore_Expiry(t *testing.T) {
	s := NewTokenStore()
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	_ = s.Save(ctx, "short", time.Minute)
	_ = s.Save(ctx, "forever", 0)

	now = now.Add(2 * time.Minute)
	if ok, _ := s.Exists(ctx, "short"); ok {
		t.Fatalf("expired token reported present")
	}
	if ok, _ := s.Exists(ctx, "forever"); !ok {
		t.Fatalf("token without ttl should not expire")
	}
}

func TestTokenStore_SweepDropsExpired(t *testing.T) {
	s := NewTokenStore()
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	_ = s.Save(ctx, "old", time.Second)
	now = now.Add(time.Minute)
	for i := 0; i < sweepEvery; i++ {
		_ = s.Save(ctx, fmt.Sprintf("t%d", i), time.Hour)
	}
	if _, ok := s.tokens["old"]; ok {
		t.Fatalf("expired entry should have been swept")
	}
}

func TestTokenStore_Concurrent(t *testing.T) {
	s := NewTokenStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tok := fmt.Sprintf("tok-%d", i)
			_ = s.Save(ctx, tok, time.Hour)
			if ok, _ := s.Exists(ctx, tok); !ok {
				t.Errorf("token %s missing right after save", tok)
			}
			if i%2 == 0 {
				_ = s.Remove(ctx, tok)
			}
		}(i)
	}
	wg.Wait()

	if s.Len() != 50 {
		t.Fatalf("expected 50 live tokens, got %d", s.Len())
	}
}
