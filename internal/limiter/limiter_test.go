package limiter

import (
	"testing"
	"time"
)

// fixedClock lets tests move time forward deterministically.
type fixedClock struct{ t time.Time }

func (c *fixedClock) now() time.Time { return c.t }

func (c *fixedClock) add(d time.Duration) { c.t = c.t.Add(d) }

func newClock(t time.Time) *fixedClock { return &fixedClock{t: t} }

func newTestStore(window time.Duration, max, dailyMax int, clk *fixedClock) *Store {
	s := New(window, max, dailyMax)
	s.now = clk.now
	return s
}

func TestAllowWindow_NthPlusOneRejected(t *testing.T) {
	clk := newClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s := newTestStore(time.Minute, 10, 1000, clk)

	for i := 0; i < 10; i++ {
		if !s.AllowWindow("1.2.3.4") {
			t.Fatalf("request %d unexpectedly limited", i+1)
		}
	}
	if s.AllowWindow("1.2.3.4") {
		t.Fatal("11th request within the window must be rejected")
	}
}

func TestAllowWindow_ResetsAfterWindowElapses(t *testing.T) {
	clk := newClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s := newTestStore(time.Minute, 2, 1000, clk)

	s.AllowWindow("c")
	s.AllowWindow("c")
	if s.AllowWindow("c") {
		t.Fatal("3rd request must be rejected")
	}

	clk.add(61 * time.Second)
	if !s.AllowWindow("c") {
		t.Fatal("counter must reset after the window elapses")
	}
}

func TestAllowWindow_RejectionsDoNotExtendWindow(t *testing.T) {
	clk := newClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s := newTestStore(time.Minute, 1, 1000, clk)

	s.AllowWindow("c")
	for i := 0; i < 5; i++ {
		clk.add(10 * time.Second)
		if s.AllowWindow("c") {
			t.Fatalf("request at +%ds must still be limited", (i+1)*10)
		}
	}
	// 60s after the first (counted) request the window has expired even
	// though rejected requests kept arriving.
	clk.add(10 * time.Second)
	if !s.AllowWindow("c") {
		t.Fatal("window expiry must be anchored to the first counted request")
	}
}

func TestAllowWindow_ClientsAreIndependent(t *testing.T) {
	clk := newClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s := newTestStore(time.Minute, 1, 1000, clk)

	s.AllowWindow("a")
	if s.AllowWindow("a") {
		t.Fatal("client a must be limited")
	}
	if !s.AllowWindow("b") {
		t.Fatal("client b must not be affected by client a")
	}
}

func TestAllowDaily_CapAndRollover(t *testing.T) {
	clk := newClock(time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC))
	s := newTestStore(time.Minute, 1000, 3, clk)

	for i := 0; i < 3; i++ {
		if !s.AllowDaily("c") {
			t.Fatalf("request %d unexpectedly limited", i+1)
		}
	}
	if s.AllowDaily("c") {
		t.Fatal("4th request of the day must be rejected")
	}

	// Crossing UTC midnight resets the day counter.
	clk.add(2 * time.Hour)
	if !s.AllowDaily("c") {
		t.Fatal("counter must reset on day rollover")
	}
}

func TestAllowDaily_UsesUTCDayStamp(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	// 02:00 local on March 2nd is still March 1st in UTC.
	clk := newClock(time.Date(2026, 3, 2, 2, 0, 0, 0, loc))
	s := newTestStore(time.Minute, 1000, 1, clk)

	s.AllowDaily("c")
	if s.AllowDaily("c") {
		t.Fatal("2nd request of the day must be rejected")
	}
	// Move to 06:00 local = 01:00 UTC March 2nd: the UTC day changed.
	clk.add(4 * time.Hour)
	if !s.AllowDaily("c") {
		t.Fatal("UTC day rollover must reset the counter")
	}
}

func TestMaybeCleanup_EvictsStaleEntries(t *testing.T) {
	clk := newClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s := newTestStore(time.Minute, 10, 10, clk)

	s.AllowWindow("old")
	s.AllowDaily("old")

	clk.add(24 * time.Hour)
	s.mu.Lock()
	s.cleanupN = cleanupEvery - 1
	s.mu.Unlock()

	s.AllowWindow("new")

	s.mu.Lock()
	_, windowKept := s.visitors["old"]
	_, dailyKept := s.daily["old"]
	s.mu.Unlock()
	if windowKept {
		t.Fatal("expired window entry must be evicted")
	}
	if dailyKept {
		t.Fatal("stale daily entry must be evicted")
	}
}

func TestNew_CoercesInvalidLimits(t *testing.T) {
	s := New(0, 0, -1)
	if s.max != 1 || s.dailyMax != 1 || s.window != time.Minute {
		t.Fatalf("coercion failed: %+v", s)
	}
}
