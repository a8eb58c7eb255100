package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/film-festival/internal/middleware"
	"github.com/iliyamo/film-festival/internal/model"
	"github.com/iliyamo/film-festival/internal/repository"
)

// CachePurger drops cached public responses after a film write.
type CachePurger interface {
	Purge(ctx context.Context) error
}

// FilmHandler serves the public film catalogue and film submission and
// review.
type FilmHandler struct {
	Films *repository.Store
	Cache CachePurger // optional
	Log   *zap.Logger
}

// NewFilmHandler constructs a FilmHandler.  cache may be nil.
func NewFilmHandler(films *repository.Store, cache CachePurger, log *zap.Logger) *FilmHandler {
	if films == nil {
		panic("nil repository passed to NewFilmHandler")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &FilmHandler{Films: films, Cache: cache, Log: log}
}

type filmReq struct {
	Title      *string           `json:"title"`
	Director   *string           `json:"director"`
	Synopsis   *string           `json:"synopsis"`
	Duration   *int              `json:"duration"`
	Genre      *string           `json:"genre"`
	Status     *model.FilmStatus `json:"status"`
	TrailerURL *string           `json:"trailerUrl"`
	PosterURL  *string           `json:"posterUrl"`
}

// filmFilterFromQuery reads the status and submitterId query filters.
func filmFilterFromQuery(c echo.Context) (repository.FilmFilter, bool) {
	f := repository.FilmFilter{
		Status:      model.FilmStatus(strings.ToLower(strings.TrimSpace(c.QueryParam("status")))),
		SubmitterID: strings.TrimSpace(c.QueryParam("submitterId")),
	}
	if f.Status != "" && !f.Status.Valid() {
		return f, false
	}
	return f, true
}

// ListFilms handles GET /api/films with optional status and submitterId
// filters.
func (h *FilmHandler) ListFilms(c echo.Context) error {
	filter, ok := filmFilterFromQuery(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status filter"})
	}
	return c.JSON(http.StatusOK, h.Films.GetFilms(filter))
}

// GetFilm handles GET /api/films/:id.
func (h *FilmHandler) GetFilm(c echo.Context) error {
	f, ok := h.Films.GetFilmByID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "film not found"})
	}
	return c.JSON(http.StatusOK, f)
}

// CreateFilm handles POST /api/films.  The film is owned by the caller
// and always starts as pending, whatever status the body carries.
func (h *FilmHandler) CreateFilm(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req filmReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	title, director, synopsis, genre := trimmed(req.Title), trimmed(req.Director), trimmed(req.Synopsis), trimmed(req.Genre)
	if title == "" || director == "" || synopsis == "" || genre == "" || req.Duration == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title, director, synopsis, duration and genre are required"})
	}
	if *req.Duration <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "duration must be a positive number of minutes"})
	}
	trailer, poster := trimmed(req.TrailerURL), trimmed(req.PosterURL)
	if !validURL(trailer) || !validURL(poster) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "trailerUrl and posterUrl must be http(s) URLs"})
	}

	f := h.Films.CreateFilm(model.Film{
		Title:       title,
		Director:    director,
		Synopsis:    synopsis,
		Duration:    *req.Duration,
		Genre:       genre,
		SubmitterID: u.ID,
		Status:      model.FilmPending,
		TrailerURL:  trailer,
		PosterURL:   poster,
	})
	h.purge(c.Request().Context())
	return c.JSON(http.StatusCreated, f)
}

// UpdateFilm handles PATCH /api/films/:id.  Admins may edit any film and
// change its status; the owning submitter may edit the descriptive
// fields of their own film.  A status sent by anyone else is dropped,
// not rejected.  Ownership and timestamps are never editable.
func (h *FilmHandler) UpdateFilm(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id := c.Param("id")
	film, ok := h.Films.GetFilmByID(id)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "film not found"})
	}
	reviewer := u.Role.Can(model.PermFilmsReview)
	owner := u.Role.Can(model.PermFilmsEditOwn) && film.SubmitterID == u.ID
	if !reviewer && !owner {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	var req filmReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if !reviewer {
		req.Status = nil
	}
	patch, msg := req.patch()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if patch.Empty() {
		return c.JSON(http.StatusOK, film)
	}
	updated, ok := h.Films.UpdateFilm(id, patch)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "film not found"})
	}
	if patch.Status != nil && *patch.Status != film.Status {
		h.Log.Info("film reviewed",
			zap.String("film_id", id),
			zap.String("reviewer_id", u.ID),
			zap.String("from", string(film.Status)),
			zap.String("to", string(updated.Status)))
	}
	h.purge(c.Request().Context())
	return c.JSON(http.StatusOK, updated)
}

// patch validates the allowlisted fields of an update request.  It
// returns a non-empty message when a supplied value is invalid.
func (r filmReq) patch() (model.FilmPatch, string) {
	var p model.FilmPatch
	for _, f := range []struct {
		in   *string
		out  **string
		name string
	}{
		{r.Title, &p.Title, "title"},
		{r.Director, &p.Director, "director"},
		{r.Synopsis, &p.Synopsis, "synopsis"},
		{r.Genre, &p.Genre, "genre"},
	} {
		if f.in == nil {
			continue
		}
		v := strings.TrimSpace(*f.in)
		if v == "" {
			return p, f.name + " must not be empty"
		}
		*f.out = &v
	}
	if r.Duration != nil {
		if *r.Duration <= 0 {
			return p, "duration must be a positive number of minutes"
		}
		d := *r.Duration
		p.Duration = &d
	}
	if r.Status != nil {
		s := model.FilmStatus(strings.ToLower(string(*r.Status)))
		if !s.Valid() {
			return p, "status must be pending, approved or rejected"
		}
		p.Status = &s
	}
	for _, f := range []struct {
		in  *string
		out **string
	}{
		{r.TrailerURL, &p.TrailerURL},
		{r.PosterURL, &p.PosterURL},
	} {
		if f.in == nil {
			continue
		}
		v := strings.TrimSpace(*f.in)
		if !validURL(v) {
			return p, "trailerUrl and posterUrl must be http(s) URLs"
		}
		*f.out = &v
	}
	return p, ""
}

func (h *FilmHandler) purge(ctx context.Context) {
	if h.Cache == nil {
		return
	}
	if err := h.Cache.Purge(ctx); err != nil {
		h.Log.Warn("purge film cache", zap.Error(err))
	}
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// validURL accepts the empty string (field not set) and absolute http(s)
// URLs.
func validURL(s string) bool {
	if s == "" {
		return true
	}
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
