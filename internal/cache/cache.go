// Package cache provides the short-TTL response cache for computed gift
// lists, keyed by the lowercase-normalized prompt summary. Entries are held
// in process memory: created on miss, read on hit while unexpired, and never
// proactively evicted — expired entries are superseded on the next write or
// swept opportunistically during lookups.
//
// The cache is safe for concurrent use. Like the usage counters, it is
// process-local; two instances of the service keep independent caches.
package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/momently/go-gift-backend/internal/domain"
)

// cleanupEvery is the number of lookups between opportunistic sweeps of
// expired entries.
const cleanupEvery = 5000

type entry struct {
	response domain.GiftResponse
	expires  time.Time
}

// Store is a TTL cache of gift responses. Construct with New; the zero value
// is not usable.
type Store struct {
	ttl time.Duration

	mu       sync.Mutex
	entries  map[string]*entry
	cleanupN uint64

	now func() time.Time
}

// New constructs a Store whose entries live for ttl. A non-positive ttl is
// coerced to one minute.
func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Store{
		ttl:     ttl,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Key normalizes a prompt summary into its cache key.
func Key(summary string) string { return strings.ToLower(summary) }

// Get returns the cached response for key if present and unexpired.
func (s *Store) Get(key string) (domain.GiftResponse, bool) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.maybeCleanup(now)

	e, ok := s.entries[key]
	if !ok || !e.expires.After(now) {
		return domain.GiftResponse{}, false
	}
	return e.response, true
}

// Set stores a response under key for the configured TTL, superseding any
// previous entry.
func (s *Store) Set(key string, resp domain.GiftResponse) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = &entry{response: resp, expires: now.Add(s.ttl)}
}

// maybeCleanup sweeps expired entries after a threshold of lookups. Caller
// must hold s.mu.
func (s *Store) maybeCleanup(now time.Time) {
	s.cleanupN++
	if s.cleanupN < cleanupEvery {
		return
	}
	s.cleanupN = 0
	for k, e := range s.entries {
		if !e.expires.After(now) {
			delete(s.entries, k)
		}
	}
}
