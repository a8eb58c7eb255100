package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/film-festival/internal/auth"
	"github.com/iliyamo/film-festival/internal/model"
)

// SessionAuth returns an Echo middleware that resolves the session token
// carried by the request (auth-token cookie or Bearer header) and, when
// role is not empty, requires the user to hold exactly that role.
// Unauthenticated requests get 401, authenticated users with another
// role get 403.  On success the user and token are stored in the
// context; see CurrentUser.
func SessionAuth(a *auth.Authenticator, role model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := a.Authenticate(auth.TokenFromRequest(c.Request()), role)
			switch {
			case errors.Is(err, auth.ErrUnauthorized):
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			case err != nil:
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
			}
			c.Set(ctxUser, id.User)
			c.Set(ctxToken, id.Token)
			return next(c)
		}
	}
}

// OptionalSession resolves the session like SessionAuth but never
// rejects: without a valid session the request continues anonymously.
func OptionalSession(a *auth.Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if id, err := a.Authenticate(auth.TokenFromRequest(c.Request()), ""); err == nil {
				c.Set(ctxUser, id.User)
				c.Set(ctxToken, id.Token)
			}
			return next(c)
		}
	}
}
