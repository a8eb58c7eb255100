package middleware // middleware provides shared request processing for handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/film-festival/internal/model"
)

// RequirePermission returns a middleware that enforces that the
// authenticated user's role grants p according to the permission
// matrix.  It must run after SessionAuth; a request without a user in
// context is treated as unauthenticated.
func RequirePermission(p model.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u, ok := CurrentUser(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
			}
			if !u.Role.Can(p) {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
