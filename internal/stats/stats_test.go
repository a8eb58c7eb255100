package stats

import (
	"fmt"
	"testing"

	"github.com/iliyamo/film-festival/internal/model"
)

func TestBuildCountsFilmsByStatus(t *testing.T) {
	films := []model.Film{
		{ID: "1", Status: model.FilmPending, Genre: "Drama"},
		{ID: "2", Status: model.FilmApproved, Genre: "Drama"},
		{ID: "3", Status: model.FilmApproved, Genre: "Comedy"},
		{ID: "4", Status: model.FilmRejected},
	}
	r := Build(films, nil)
	want := FilmCounts{Total: 4, Pending: 1, Approved: 2, Rejected: 1}
	if r.Films != want {
		t.Fatalf("Films = %+v, want %+v", r.Films, want)
	}
	if r.Genres["Drama"] != 2 || r.Genres["Comedy"] != 1 || len(r.Genres) != 2 {
		t.Fatalf("Genres = %v", r.Genres)
	}
	if r.Tickets != (TicketTotals{}) {
		t.Fatalf("Tickets = %+v, want zero", r.Tickets)
	}
}

func TestByFilmSkipsCancelled(t *testing.T) {
	tickets := []model.Ticket{
		{FilmID: "a", Price: 1500, Quantity: 2, Status: model.TicketConfirmed},
		{FilmID: "a", Price: 1500, Quantity: 1, Status: model.TicketConfirmed},
		{FilmID: "a", Price: 1500, Quantity: 5, Status: model.TicketCancelled},
		{FilmID: "b", Price: 1000, Quantity: 1, Status: model.TicketPending},
	}
	got := ByFilm(tickets)
	if want := (FilmSales{TicketsSold: 3, Revenue: 4500, Orders: 2}); got["a"] != want {
		t.Fatalf("a = %+v, want %+v", got["a"], want)
	}
	if want := (FilmSales{TicketsSold: 1, Revenue: 1000, Orders: 1}); got["b"] != want {
		t.Fatalf("b = %+v, want %+v", got["b"], want)
	}
	if _, ok := got["c"]; ok {
		t.Fatal("film without sales present")
	}

	r := Build(nil, tickets)
	if want := (TicketTotals{Orders: 3, Sold: 4, Revenue: 5500}); r.Tickets != want {
		t.Fatalf("Tickets = %+v, want %+v", r.Tickets, want)
	}
}

func TestTopFilmsOrderedByRevenue(t *testing.T) {
	var films []model.Film
	var tickets []model.Ticket
	// film i earns i*1000
	for i := 1; i <= 7; i++ {
		id := fmt.Sprintf("f%d", i)
		films = append(films, model.Film{ID: id, Title: "Film " + id, Status: model.FilmApproved})
		tickets = append(tickets, model.Ticket{FilmID: id, Price: 1000, Quantity: i, Status: model.TicketConfirmed})
	}

	top := Build(films, tickets).TopFilms
	if len(top) != TopFilmsLimit {
		t.Fatalf("len(TopFilms) = %d, want %d", len(top), TopFilmsLimit)
	}
	for i, want := range []string{"f7", "f6", "f5", "f4", "f3"} {
		if top[i].ID != want {
			t.Fatalf("TopFilms[%d] = %s, want %s", i, top[i].ID, want)
		}
	}
	for i := 1; i < len(top); i++ {
		if top[i].Revenue > top[i-1].Revenue {
			t.Fatalf("TopFilms not descending at %d: %+v", i, top)
		}
	}
	if top[0].Revenue != 7000 || top[0].TicketsSold != 7 {
		t.Fatalf("TopFilms[0] = %+v", top[0])
	}
}

func TestTopFilmsFewerThanLimit(t *testing.T) {
	films := []model.Film{{ID: "x", Title: "B"}, {ID: "y", Title: "A"}}
	top := Build(films, nil).TopFilms
	if len(top) != 2 {
		t.Fatalf("len(TopFilms) = %d, want 2", len(top))
	}
	// ties are broken by title
	if top[0].ID != "y" {
		t.Fatalf("TopFilms[0] = %+v, want film y", top[0])
	}
	if Build(nil, nil).TopFilms == nil {
		t.Fatal("TopFilms must serialize as [] when empty")
	}
}
