package repository

import (
	"sort"

	"github.com/iliyamo/film-festival/internal/model"
)

// FilmFilter narrows GetFilms.  Zero-valued fields match every film.
type FilmFilter struct {
	Status      model.FilmStatus
	SubmitterID string
}

func (f FilmFilter) match(film model.Film) bool {
	if f.Status != "" && film.Status != f.Status {
		return false
	}
	if f.SubmitterID != "" && film.SubmitterID != f.SubmitterID {
		return false
	}
	return true
}

// CreateFilm assigns an ID and submission time and inserts f.  The
// status is stored as given; handlers force pending.
func (s *Store) CreateFilm(f model.Film) model.Film {
	s.mu.Lock()
	defer s.mu.Unlock()
	f.ID = s.newID()
	f.SubmittedAt = s.now()
	s.films[f.ID] = f
	return f
}

// GetFilms returns every film matching all supplied filters, newest
// submission first.
func (s *Store) GetFilms(filter FilmFilter) []model.Film {
	s.mu.RLock()
	out := make([]model.Film, 0, len(s.films))
	for _, f := range s.films {
		if filter.match(f) {
			out = append(out, f)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].SubmittedAt.Equal(out[j].SubmittedAt) {
			return out[i].SubmittedAt.After(out[j].SubmittedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// GetFilmByID fetches a film by id.
func (s *Store) GetFilmByID(id string) (model.Film, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.films[id]
	return f, ok
}

// UpdateFilm merges patch into the stored film and returns the result.
// No authorization happens here: callers strip the fields the current
// user may not change.
func (s *Store) UpdateFilm(id string, patch model.FilmPatch) (model.Film, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.films[id]
	if !ok {
		return model.Film{}, false
	}
	f = patch.Apply(f)
	s.films[id] = f
	return f, true
}
