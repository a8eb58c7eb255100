package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/film-festival/internal/middleware"
	"github.com/iliyamo/film-festival/internal/model"
	"github.com/iliyamo/film-festival/internal/repository"
	"github.com/iliyamo/film-festival/internal/stats"
)

// DashboardHandler serves the submitter and admin portals.  Role checks
// happen in middleware.
type DashboardHandler struct {
	Store *repository.Store
}

// NewDashboardHandler constructs a DashboardHandler.
func NewDashboardHandler(store *repository.Store) *DashboardHandler {
	if store == nil {
		panic("nil repository passed to NewDashboardHandler")
	}
	return &DashboardHandler{Store: store}
}

type submitterFilm struct {
	model.Film
	Stats stats.FilmSales `json:"stats"`
}

type adminFilm struct {
	model.Film
	Submitter *userPart       `json:"submitter"`
	Stats     stats.FilmSales `json:"stats"`
}

// SubmitterFilms handles GET /api/submitter/films: the caller's own
// films with their ticket sales.
func (h *DashboardHandler) SubmitterFilms(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	films := h.Store.GetFilms(repository.FilmFilter{SubmitterID: u.ID})
	out := make([]submitterFilm, 0, len(films))
	for _, f := range films {
		byFilm := stats.ByFilm(h.Store.GetTicketsByFilm(f.ID))
		out = append(out, submitterFilm{Film: f, Stats: byFilm[f.ID]})
	}
	return c.JSON(http.StatusOK, out)
}

// AdminFilms handles GET /api/admin/films: every film, optionally
// filtered by status, with the submitter's identity and ticket sales.
// Submitter is null when the account no longer exists.
func (h *DashboardHandler) AdminFilms(c echo.Context) error {
	filter, ok := filmFilterFromQuery(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status filter"})
	}
	films := h.Store.GetFilms(filter)
	sales := stats.ByFilm(h.Store.ListTickets())
	out := make([]adminFilm, 0, len(films))
	for _, f := range films {
		row := adminFilm{Film: f, Stats: sales[f.ID]}
		if sub, ok := h.Store.GetUserByID(f.SubmitterID); ok {
			p := toUserPart(sub)
			row.Submitter = &p
		}
		out = append(out, row)
	}
	return c.JSON(http.StatusOK, out)
}

// AdminStats handles GET /api/admin/stats.
func (h *DashboardHandler) AdminStats(c echo.Context) error {
	films := h.Store.GetFilms(repository.FilmFilter{})
	return c.JSON(http.StatusOK, stats.Build(films, h.Store.ListTickets()))
}
