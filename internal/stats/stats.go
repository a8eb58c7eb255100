// Package stats aggregates ticket sales for the submitter and admin
// dashboards.
package stats

import (
	"sort"

	"github.com/iliyamo/film-festival/internal/model"
)

// TopFilmsLimit caps the number of entries in Report.TopFilms.
const TopFilmsLimit = 5

// FilmSales sums the non-cancelled tickets of one film.
type FilmSales struct {
	TicketsSold int   `json:"ticketsSold"`
	Revenue     int64 `json:"revenue"`
	Orders      int   `json:"orders"`
}

// FilmCounts counts films by review state.
type FilmCounts struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// TicketTotals sums all non-cancelled tickets.
type TicketTotals struct {
	Orders  int   `json:"orders"`
	Sold    int   `json:"sold"`
	Revenue int64 `json:"revenue"`
}

// TopFilm is one entry of the revenue ranking.
type TopFilm struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	TicketsSold int    `json:"ticketsSold"`
	Revenue     int64  `json:"revenue"`
}

// Report is the admin dashboard payload.
type Report struct {
	Films    FilmCounts     `json:"films"`
	Tickets  TicketTotals   `json:"tickets"`
	Genres   map[string]int `json:"genres"`
	TopFilms []TopFilm      `json:"topFilms"`
}

func counts(t model.Ticket) bool { return t.Status != model.TicketCancelled }

// ByFilm groups tickets by film id.  Films without sales are absent from
// the result; the zero FilmSales is the right value for them.
func ByFilm(tickets []model.Ticket) map[string]FilmSales {
	out := make(map[string]FilmSales)
	for _, t := range tickets {
		if !counts(t) {
			continue
		}
		s := out[t.FilmID]
		s.TicketsSold += t.Quantity
		s.Revenue += t.Total()
		s.Orders++
		out[t.FilmID] = s
	}
	return out
}

// Build computes the admin report over all films and tickets.
func Build(films []model.Film, tickets []model.Ticket) Report {
	r := Report{Genres: make(map[string]int), TopFilms: make([]TopFilm, 0, TopFilmsLimit)}
	for _, f := range films {
		r.Films.Total++
		switch f.Status {
		case model.FilmPending:
			r.Films.Pending++
		case model.FilmApproved:
			r.Films.Approved++
		case model.FilmRejected:
			r.Films.Rejected++
		}
		if f.Genre != "" {
			r.Genres[f.Genre]++
		}
	}
	for _, t := range tickets {
		if !counts(t) {
			continue
		}
		r.Tickets.Orders++
		r.Tickets.Sold += t.Quantity
		r.Tickets.Revenue += t.Total()
	}

	sales := ByFilm(tickets)
	ranked := make([]TopFilm, 0, len(films))
	for _, f := range films {
		s := sales[f.ID]
		ranked = append(ranked, TopFilm{
			ID:          f.ID,
			Title:       f.Title,
			Genre:       f.Genre,
			TicketsSold: s.TicketsSold,
			Revenue:     s.Revenue,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Revenue != ranked[j].Revenue {
			return ranked[i].Revenue > ranked[j].Revenue
		}
		if ranked[i].Title != ranked[j].Title {
			return ranked[i].Title < ranked[j].Title
		}
		return ranked[i].ID < ranked[j].ID
	})
	if len(ranked) > TopFilmsLimit {
		ranked = ranked[:TopFilmsLimit]
	}
	r.TopFilms = append(r.TopFilms, ranked...)
	return r
}
