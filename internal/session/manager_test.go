package session

import (
	"context"
	"testing"
	"time"

	"github.com/iliyamo/film-festival/internal/repository"
)

type clock struct{ t time.Time }

func newClock() *clock { return &clock{t: time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)} }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestManager(store *repository.Store, c *clock) *Manager {
	m := NewManager(store, 0, nil)
	m.SetClock(c.now)
	return m
}

func TestCreateIssuesUniqueTokens(t *testing.T) {
	c := newClock()
	m := newTestManager(repository.New(), c)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		s, err := m.Create("user-1")
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if len(s.Token) != 64 {
			t.Fatalf("token %q has length %d, want 64", s.Token, len(s.Token))
		}
		if seen[s.Token] {
			t.Fatalf("token %q issued twice", s.Token)
		}
		seen[s.Token] = true
		if want := c.now().Add(DefaultTTL); !s.ExpiresAt.Equal(want) {
			t.Fatalf("ExpiresAt = %v, want %v", s.ExpiresAt, want)
		}
	}
}

func TestGetUnknownToken(t *testing.T) {
	m := newTestManager(repository.New(), newClock())
	for _, tok := range []string{"", "nope", "0000000000000000000000000000000000000000000000000000000000000000"} {
		if _, ok := m.Get(tok); ok {
			t.Errorf("Get(%q) reported a session", tok)
		}
	}
}

func TestGetExpiresLazily(t *testing.T) {
	store := repository.New()
	c := newClock()
	m := newTestManager(store, c)

	s, err := m.Create("user-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	c.advance(DefaultTTL - time.Second)
	if got, ok := m.Get(s.Token); !ok || got.UserID != "user-1" {
		t.Fatalf("Get before expiry = %+v, %v", got, ok)
	}

	c.advance(time.Second)
	if _, ok := m.Get(s.Token); ok {
		t.Fatal("Get at expiry reported a session")
	}
	if store.SessionCount() != 0 {
		t.Fatal("expired session was not removed on read")
	}
	// expired is terminal even if the clock goes back
	c.advance(-time.Hour)
	if _, ok := m.Get(s.Token); ok {
		t.Fatal("expired session came back")
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	m := newTestManager(repository.New(), newClock())
	s, err := m.Create("user-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	m.Delete(s.Token)
	m.Delete(s.Token)
	m.Delete("")
	if _, ok := m.Get(s.Token); ok {
		t.Fatal("deleted session still resolves")
	}
}

func TestSweepReclaimsAbandonedSessions(t *testing.T) {
	store := repository.New()
	c := newClock()
	m := newTestManager(store, c)

	for i := 0; i < 3; i++ {
		if _, err := m.Create("user-1"); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	c.advance(time.Hour)
	keep, err := m.Create("user-2")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	c.advance(DefaultTTL - 30*time.Minute)
	if n := m.Sweep(); n != 3 {
		t.Fatalf("Sweep removed %d sessions, want 3", n)
	}
	if _, ok := m.Get(keep.Token); !ok {
		t.Fatal("unexpired session was swept")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	store := repository.New()
	m := NewManager(store, time.Millisecond, nil)
	if _, err := m.Create("user-1"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for store.SessionCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("sweeper did not reclaim the expired session")
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
