package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/film-festival/internal/auth"
	"github.com/iliyamo/film-festival/internal/handler"
	"github.com/iliyamo/film-festival/internal/middleware"
)

// Handlers bundles everything the route table needs.
type Handlers struct {
	Auth      *handler.AuthHandler
	Films     *handler.FilmHandler
	Dashboard *handler.DashboardHandler
	Tickets   *handler.TicketHandler
	Authn     *auth.Authenticator
	Cache     *middleware.ResponseCache // optional
}

// Register mounts every route of the API on e.
func Register(e *echo.Echo, h Handlers) {
	RegisterRoutes(e)
	RegisterAuth(e, h.Auth, h.Authn)
	RegisterPublic(e, h.Films, h.Cache)
	RegisterSubmitter(e, h.Films, h.Dashboard, h.Authn)
	RegisterAdmin(e, h.Dashboard, h.Authn)
	RegisterBuyer(e, h.Tickets, h.Authn)
}

// RegisterRoutes registers routes that do not require authentication and
// do not touch the store.  Currently it exposes only the health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/api/health", handler.Health)
}

// RegisterAuth registers the authentication routes.  Register, login and
// logout work without a session; logout ends the caller's session when
// there is one.  /api/auth/me requires a session but accepts any role.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, authn *auth.Authenticator) {
	g := e.Group("/api/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/logout", a.Logout, middleware.OptionalSession(authn))
	g.GET("/me", a.Me, middleware.SessionAuth(authn, ""))
}

// RegisterPublic registers the unauthenticated film catalogue.  Responses
// are cached in Redis when a cache is configured.
func RegisterPublic(e *echo.Echo, f *handler.FilmHandler, cache *middleware.ResponseCache) {
	var mw []echo.MiddlewareFunc
	if cache != nil {
		mw = append(mw, cache.Middleware())
	}
	e.GET("/api/films", f.ListFilms, mw...)
	e.GET("/api/films/:id", f.GetFilm, mw...)
}
