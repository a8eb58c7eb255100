package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/film-festival/internal/auth"
	"github.com/iliyamo/film-festival/internal/handler"
	"github.com/iliyamo/film-festival/internal/middleware"
	"github.com/iliyamo/film-festival/internal/model"
)

// RegisterSubmitter registers film submission and editing plus the
// filmmaker portal.  PATCH /api/films/:id only requires a session here;
// the handler decides between admin review and owner edits.
func RegisterSubmitter(e *echo.Echo, f *handler.FilmHandler, d *handler.DashboardHandler, authn *auth.Authenticator) {
	e.POST("/api/films", f.CreateFilm,
		middleware.SessionAuth(authn, model.RoleSubmitter),
		middleware.RequirePermission(model.PermFilmsSubmit),
	)
	e.PATCH("/api/films/:id", f.UpdateFilm, middleware.SessionAuth(authn, ""))

	g := e.Group("/api/submitter", middleware.SessionAuth(authn, model.RoleSubmitter))
	g.GET("/films", d.SubmitterFilms)
}
