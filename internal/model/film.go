package model

import "time"

// FilmStatus is the review state of a submitted film.
type FilmStatus string

const (
	FilmPending  FilmStatus = "pending"
	FilmApproved FilmStatus = "approved"
	FilmRejected FilmStatus = "rejected"
)

// Valid reports whether s is a known film status.
func (s FilmStatus) Valid() bool {
	switch s {
	case FilmPending, FilmApproved, FilmRejected:
		return true
	}
	return false
}

// Film is a festival submission.  New films always start as pending and
// only an admin moves them to approved or rejected.  Films are never
// deleted.
//
// Fields:
//  ID          – opaque identifier.
//  Title       – film title.
//  Director    – director's name.
//  Synopsis    – short description shown on public pages.
//  Duration    – running time in minutes, always positive.
//  Genre       – free-form genre label used for statistics.
//  SubmitterID – ID of the submitting user.
//  Status      – review state.
//  SubmittedAt – when the film was submitted.
//  TrailerURL  – optional trailer link.
//  PosterURL   – optional poster image link.
type Film struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Director    string     `json:"director"`
	Synopsis    string     `json:"synopsis"`
	Duration    int        `json:"duration"`
	Genre       string     `json:"genre"`
	SubmitterID string     `json:"submitterId"`
	Status      FilmStatus `json:"status"`
	SubmittedAt time.Time  `json:"submittedAt"`
	TrailerURL  string     `json:"trailerUrl,omitempty"`
	PosterURL   string     `json:"posterUrl,omitempty"`
}

// FilmPatch carries a partial update.  Nil fields are left untouched.
type FilmPatch struct {
	Title      *string
	Director   *string
	Synopsis   *string
	Duration   *int
	Genre      *string
	Status     *FilmStatus
	TrailerURL *string
	PosterURL  *string
}

// Empty reports whether the patch changes nothing.
func (p FilmPatch) Empty() bool {
	return p.Title == nil && p.Director == nil && p.Synopsis == nil && p.Duration == nil &&
		p.Genre == nil && p.Status == nil && p.TrailerURL == nil && p.PosterURL == nil
}

// Apply merges the non-nil fields of p into f and returns the result.
func (p FilmPatch) Apply(f Film) Film {
	if p.Title != nil {
		f.Title = *p.Title
	}
	if p.Director != nil {
		f.Director = *p.Director
	}
	if p.Synopsis != nil {
		f.Synopsis = *p.Synopsis
	}
	if p.Duration != nil {
		f.Duration = *p.Duration
	}
	if p.Genre != nil {
		f.Genre = *p.Genre
	}
	if p.Status != nil {
		f.Status = *p.Status
	}
	if p.TrailerURL != nil {
		f.TrailerURL = *p.TrailerURL
	}
	if p.PosterURL != nil {
		f.PosterURL = *p.PosterURL
	}
	return f
}
