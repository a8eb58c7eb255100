package repository

import (
	"time"

	"github.com/iliyamo/film-festival/internal/model"
)

// CreateSession stores sess under its token.  The ID is assigned here;
// token and expiry come from the session manager.
func (s *Store) CreateSession(sess model.Session) model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess.ID = s.newID()
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = s.now()
	}
	s.sessions[sess.Token] = sess
	return sess
}

// LookupSession returns the session for token if it is still valid at
// now.  An entry that has expired is deleted and reported as absent.
func (s *Store) LookupSession(token string, now time.Time) (model.Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return model.Session{}, false
	}
	if !sess.Expired(now) {
		return sess, true
	}

	s.mu.Lock()
	// re-check: the token may have been deleted meanwhile
	if cur, ok := s.sessions[token]; ok && cur.Expired(now) {
		delete(s.sessions, token)
	}
	s.mu.Unlock()
	return model.Session{}, false
}

// DeleteSession removes the session for token.  Unknown tokens are
// ignored.
func (s *Store) DeleteSession(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// DeleteExpiredSessions removes every session that has expired at now
// and returns how many were removed.
func (s *Store) DeleteExpiredSessions(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for token, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, token)
			n++
		}
	}
	return n
}

// SessionCount returns the number of stored sessions, expired or not.
func (s *Store) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
