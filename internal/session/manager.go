// Package session issues and validates the opaque bearer tokens that
// stand in for an authenticated user.
package session

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/iliyamo/film-festival/internal/model"
	"github.com/iliyamo/film-festival/internal/utils"
)

// DefaultTTL is how long a session stays valid after login.
const DefaultTTL = 24 * time.Hour

// Store is the subset of the entity store the manager needs.
type Store interface {
	CreateSession(model.Session) model.Session
	LookupSession(token string, now time.Time) (model.Session, bool)
	DeleteSession(token string)
	DeleteExpiredSessions(now time.Time) int
}

// Manager creates, resolves and expires sessions.  Expired sessions are
// evicted when they are next looked up, and Run sweeps the ones nobody
// presents again.
type Manager struct {
	store    Store
	ttl      time.Duration
	log      *zap.Logger
	now      func() time.Time
	newToken func() (string, error)
}

// NewManager returns a Manager backed by store.  A non-positive ttl
// selects DefaultTTL; a nil logger disables logging.
func NewManager(store Store, ttl time.Duration, log *zap.Logger) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		store:    store,
		ttl:      ttl,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
		newToken: utils.NewSessionToken,
	}
}

// SetClock replaces the time source.  Tests use it to move past expiry.
func (m *Manager) SetClock(now func() time.Time) { m.now = now }

// TTL returns the lifetime of new sessions.
func (m *Manager) TTL() time.Duration { return m.ttl }

// Create starts a session for userID that expires TTL from now.
func (m *Manager) Create(userID string) (model.Session, error) {
	token, err := m.newToken()
	if err != nil {
		return model.Session{}, fmt.Errorf("generate session token: %w", err)
	}
	now := m.now()
	return m.store.CreateSession(model.Session{
		UserID:    userID,
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}), nil
}

// Get resolves token to its session.  Unknown tokens and tokens whose
// expiry has been reached are reported as absent; the latter are removed
// from the store.
func (m *Manager) Get(token string) (model.Session, bool) {
	if token == "" {
		return model.Session{}, false
	}
	return m.store.LookupSession(token, m.now())
}

// Delete ends the session for token.  Deleting an unknown token is not
// an error.
func (m *Manager) Delete(token string) {
	if token == "" {
		return
	}
	m.store.DeleteSession(token)
}

// Sweep removes every expired session and returns how many were removed.
func (m *Manager) Sweep() int {
	return m.store.DeleteExpiredSessions(m.now())
}

// Run sweeps expired sessions every interval until ctx is cancelled.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				m.log.Debug("expired sessions swept", zap.Int("count", n))
			}
		}
	}
}
