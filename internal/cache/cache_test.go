package cache

import (
	"testing"
	"time"

	"github.com/momently/go-gift-backend/internal/domain"
)

func newTestStore(ttl time.Duration, at time.Time) (*Store, *time.Time) {
	s := New(ttl)
	current := at
	s.now = func() time.Time { return current }
	return s, &current
}

func TestKey_LowercasesSummary(t *testing.T) {
	if got := Key("Birthday Gift For HER"); got != "birthday gift for her" {
		t.Fatalf("key: got %q", got)
	}
}

func TestGetSet_RoundTripWithinTTL(t *testing.T) {
	s, now := newTestStore(20*time.Minute, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	resp := domain.GiftResponse{
		QuerySummary: "gift for her",
		Recipient:    domain.RecipientHer,
		Gifts:        []domain.Gift{{ID: "her-1", Name: "Pearl Huggie Earrings", Price: "$48"}},
	}
	s.Set(Key(resp.QuerySummary), resp)

	*now = now.Add(19 * time.Minute)
	got, ok := s.Get(Key("Gift For Her"))
	if !ok {
		t.Fatal("expected hit within TTL")
	}
	if got.QuerySummary != resp.QuerySummary || len(got.Gifts) != 1 || got.Gifts[0].ID != "her-1" {
		t.Fatalf("cached response mangled: %+v", got)
	}
}

func TestGet_MissAfterExpiry(t *testing.T) {
	s, now := newTestStore(20*time.Minute, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	s.Set("k", domain.GiftResponse{QuerySummary: "k"})
	*now = now.Add(20 * time.Minute)
	if _, ok := s.Get("k"); ok {
		t.Fatal("entry at exactly TTL must be expired")
	}
}

func TestGet_MissOnUnknownKey(t *testing.T) {
	s, _ := newTestStore(time.Minute, time.Now())
	if _, ok := s.Get("nope"); ok {
		t.Fatal("unexpected hit")
	}
}

func TestSet_SupersedesPreviousEntry(t *testing.T) {
	s, _ := newTestStore(time.Minute, time.Now())

	s.Set("k", domain.GiftResponse{QuerySummary: "first"})
	s.Set("k", domain.GiftResponse{QuerySummary: "second"})

	got, ok := s.Get("k")
	if !ok || got.QuerySummary != "second" {
		t.Fatalf("expected superseding write to win, got %+v ok=%v", got, ok)
	}
}

func TestMaybeCleanup_SweepsExpired(t *testing.T) {
	s, now := newTestStore(time.Minute, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	s.Set("stale", domain.GiftResponse{})
	*now = now.Add(2 * time.Minute)

	s.mu.Lock()
	s.cleanupN = cleanupEvery - 1
	s.mu.Unlock()
	s.Get("anything")

	s.mu.Lock()
	_, kept := s.entries["stale"]
	s.mu.Unlock()
	if kept {
		t.Fatal("expired entry must be swept")
	}
}

func TestNew_CoercesInvalidTTL(t *testing.T) {
	if s := New(0); s.ttl != time.Minute {
		t.Fatalf("ttl coercion failed: %v", s.ttl)
	}
}
