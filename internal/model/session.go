package model

import "time"

// Session maps an opaque bearer token to the user it authenticates.
// A session is active until ExpiresAt; from that instant on it is
// treated as absent and removed on the next lookup or sweep.
type Session struct {
	ID        string
	UserID    string
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
