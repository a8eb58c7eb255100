package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/film-festival/internal/auth"
	"github.com/iliyamo/film-festival/internal/handler"
	"github.com/iliyamo/film-festival/internal/middleware"
	"github.com/iliyamo/film-festival/internal/model"
)

// RegisterAdmin registers the admin portal under /api/admin.  All routes
// require a session with the admin role.
func RegisterAdmin(e *echo.Echo, d *handler.DashboardHandler, authn *auth.Authenticator) {
	g := e.Group("/api/admin", middleware.SessionAuth(authn, model.RoleAdmin))
	g.GET("/films", d.AdminFilms, middleware.RequirePermission(model.PermFilmsViewAll))
	g.GET("/stats", d.AdminStats, middleware.RequirePermission(model.PermStatsView))
}
