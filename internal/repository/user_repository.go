package repository

import (
	"strings"

	"github.com/iliyamo/film-festival/internal/model"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser assigns an ID and creation time and inserts u.  The email
// is normalized and must not belong to another user.
func (s *Store) CreateUser(u model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.Email = normalizeEmail(u.Email)
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return model.User{}, ErrEmailExists
		}
	}
	u.ID = s.newID()
	u.CreatedAt = s.now()
	s.users[u.ID] = u
	return u, nil
}

// GetUserByEmail fetches a user by normalized email.  A linear scan is
// fine for the number of accounts a festival has.
func (s *Store) GetUserByEmail(email string) (model.User, bool) {
	email = normalizeEmail(email)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return model.User{}, false
}

// GetUserByID fetches a user by id.
func (s *Store) GetUserByID(id string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}
