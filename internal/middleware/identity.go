package middleware

// identity.go defines the context keys set by SessionAuth and the
// helpers handlers use to read them back.

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/film-festival/internal/model"
)

const (
	ctxUser  = "user"
	ctxToken = "token"
)

// CurrentUser returns the user authenticated by SessionAuth.
func CurrentUser(c echo.Context) (model.User, bool) {
	u, ok := c.Get(ctxUser).(model.User)
	return u, ok
}

// CurrentToken returns the session token resolved by SessionAuth or
// OptionalSession, or "" for an anonymous request.
func CurrentToken(c echo.Context) string {
	t, _ := c.Get(ctxToken).(string)
	return t
}

// userID returns the authenticated user's ID, or "guest".
func userID(c echo.Context) string {
	if u, ok := CurrentUser(c); ok {
		return u.ID
	}
	return "guest"
}
