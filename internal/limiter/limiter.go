// Package limiter implements the per-client usage counters behind the
// gift-generation endpoint: a fixed 60-second window counter and a calendar-day
// counter, both keyed by client address and held in process memory.
//
// This is best-effort abuse mitigation, not a security boundary: counters are
// lost on restart, and a multi-instance deployment would need a shared store
// to enforce global limits. The window is a fixed counting window that resets
// entirely when it expires, not a rolling window.
//
// The store is safe for concurrent use. Idle entries are evicted
// opportunistically during lookups to bound memory, the same way the HTTP
// layer's token-bucket limiter garbage-collects its visitor buckets.
package limiter

import (
	"sync"
	"time"
)

// dayFormat stamps daily counters with a UTC calendar date.
const dayFormat = "2006-01-02"

// cleanupEvery is the number of lookups between opportunistic GC passes.
const cleanupEvery = 5000

// windowEntry counts requests inside one fixed window.
type windowEntry struct {
	count   int
	expires time.Time
}

// dayEntry counts requests for one UTC calendar day.
type dayEntry struct {
	count int
	day   string
}

// Store holds the per-client counters. Construct with New; the zero value is
// not usable.
type Store struct {
	window   time.Duration
	max      int
	dailyMax int

	mu       sync.Mutex
	visitors map[string]*windowEntry
	daily    map[string]*dayEntry
	cleanupN uint64

	now func() time.Time
}

// New constructs a Store enforcing max requests per window and dailyMax
// requests per UTC calendar day, per client key. Non-positive limits are
// coerced to 1.
func New(window time.Duration, max, dailyMax int) *Store {
	if max <= 0 {
		max = 1
	}
	if dailyMax <= 0 {
		dailyMax = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &Store{
		window:   window,
		max:      max,
		dailyMax: dailyMax,
		visitors: make(map[string]*windowEntry),
		daily:    make(map[string]*dayEntry),
		now:      time.Now,
	}
}

// AllowWindow records one request for client against the short window and
// reports whether it is allowed. The first request of a window (or of an
// expired one) resets the counter; once the counter has reached the limit,
// further requests are rejected without being counted, so the window expiry
// is not pushed out by rejected traffic.
func (s *Store) AllowWindow(client string) bool {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.maybeCleanup(now)

	e, ok := s.visitors[client]
	if !ok || e.expires.Before(now) {
		s.visitors[client] = &windowEntry{count: 1, expires: now.Add(s.window)}
		return true
	}
	if e.count >= s.max {
		return false
	}
	e.count++
	return true
}

// AllowDaily records one request for client against the UTC calendar-day
// counter and reports whether it is allowed. The counter resets when the day
// stamp rolls over.
func (s *Store) AllowDaily(client string) bool {
	today := s.now().UTC().Format(dayFormat)

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.daily[client]
	if !ok || e.day != today {
		s.daily[client] = &dayEntry{count: 1, day: today}
		return true
	}
	if e.count >= s.dailyMax {
		return false
	}
	e.count++
	return true
}

// maybeCleanup evicts expired window entries and stale daily entries after a
// threshold of lookups. Caller must hold s.mu.
func (s *Store) maybeCleanup(now time.Time) {
	s.cleanupN++
	if s.cleanupN < cleanupEvery {
		return
	}
	s.cleanupN = 0
	for k, e := range s.visitors {
		if e.expires.Before(now) {
			delete(s.visitors, k)
		}
	}
	today := now.UTC().Format(dayFormat)
	for k, e := range s.daily {
		if e.day != today {
			delete(s.daily, k)
		}
	}
}
