// Package auth turns an inbound credential into an authorization
// decision.
package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/iliyamo/film-festival/internal/model"
	"github.com/iliyamo/film-festival/internal/session"
	"github.com/iliyamo/film-festival/internal/utils"
)

// CookieName is the cookie that carries the session token.
const CookieName = "auth-token"

var (
	// ErrUnauthenticated means no valid session backs the request.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrUnauthorized means the caller is known but lacks the required role.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidCredentials is returned by Login for an unknown email or a
	// wrong password; the two cases are not distinguished.
	ErrInvalidCredentials = errors.New("invalid credentials")
)


// Users resolves user records.
type Users interface {
	GetUserByID(id string) (model.User, bool)
	GetUserByEmail(email string) (model.User, bool)
}

// Identity is the authenticated context of a request.
type Identity struct {
	User  model.User
	Token string
}

// Authenticator is the single gate between a bearer token and a user.
type Authenticator struct {
	sessions *session.Manager
	users    Users
	// dummyHash is checked when the email is unknown so that login takes
	// the same time whether or not the account exists.  It must share
	// the cost of real password hashes.
	dummyHash string
}

// NewAuthenticator wires an Authenticator.  bcryptCost must be the cost
// passwords are hashed with.
func NewAuthenticator(sessions *session.Manager, users Users, bcryptCost int) *Authenticator {
	if sessions == nil || users == nil {
		panic("nil dependency passed to NewAuthenticator")
	}
	dummy, err := utils.HashPassword("unknown-account", bcryptCost)
	if err != nil {
		panic("hash dummy password: " + err.Error())
	}
	return &Authenticator{sessions: sessions, users: users, dummyHash: dummy}
}

// Sessions exposes the session manager for login and logout.
func (a *Authenticator) Sessions() *session.Manager { return a.sessions }

// Authenticate resolves token to a user.  When required is not empty
// the user's role must equal it exactly; there is no role hierarchy.
// It returns ErrUnauthenticated for a missing, unknown or expired token
// and for a session whose user no longer exists, and ErrUnauthorized
// for a role mismatch.
func (a *Authenticator) Authenticate(token string, required model.Role) (Identity, error) {
	if token == "" {
		return Identity{}, ErrUnauthenticated
	}
	sess, ok := a.sessions.Get(token)
	if !ok {
		return Identity{}, ErrUnauthenticated
	}
	u, ok := a.users.GetUserByID(sess.UserID)
	if !ok {
		return Identity{}, ErrUnauthenticated
	}
	if required != "" && u.Role != required {
		return Identity{}, ErrUnauthorized
	}
	return Identity{User: u, Token: token}, nil
}

// Login checks email and password and opens a session on success.
func (a *Authenticator) Login(email, password string) (model.User, model.Session, error) {
	u, ok := a.users.GetUserByEmail(email)
	if !ok {
		utils.VerifyPassword(a.dummyHash, password)
		return model.User{}, model.Session{}, ErrInvalidCredentials
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return model.User{}, model.Session{}, ErrInvalidCredentials
	}
	sess, err := a.sessions.Create(u.ID)
	if err != nil {
		return model.User{}, model.Session{}, err
	}
	return u, sess, nil
}

// TokenFromRequest extracts the session token from the auth cookie or,
// failing that, from an "Authorization: Bearer" header.
func TokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value
	}
	h := r.Header.Get("Authorization")
	if len(h) > len("Bearer ") && strings.EqualFold(h[:len("Bearer ")], "Bearer ") {
		return strings.TrimSpace(h[len("Bearer "):])
	}
	return ""
}
