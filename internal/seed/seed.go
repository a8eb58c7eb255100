// Package seed loads demo accounts, films and tickets into an empty
// store so the portals have something to show in development.
package seed

import (
	"fmt"
	"time"

	"github.com/iliyamo/film-festival/internal/model"
	"github.com/iliyamo/film-festival/internal/repository"
	"github.com/iliyamo/film-festival/internal/utils"
)

// Account is a demo login.
type Account struct {
	Email    string
	Password string
	Name     string
	Role     model.Role
}

// Accounts are the demo logins, one per role.
var Accounts = []Account{
	{Email: "admin@festival.local", Password: "festival-admin", Name: "Festival Admin", Role: model.RoleAdmin},
	{Email: "filmmaker@festival.local", Password: "festival-filmmaker", Name: "Ava Moreau", Role: model.RoleSubmitter},
	{Email: "buyer@festival.local", Password: "festival-buyer", Name: "Sam Rivera", Role: model.RoleBuyer},
}

var films = []model.Film{
	{Title: "The Quiet Harbor", Director: "Ava Moreau", Synopsis: "A lighthouse keeper's last winter on a fading island.", Duration: 104, Genre: "Drama", Status: model.FilmApproved},
	{Title: "Neon Tide", Director: "Ava Moreau", Synopsis: "Two couriers race across a flooded city before dawn.", Duration: 96, Genre: "Thriller", Status: model.FilmApproved},
	{Title: "Paper Moons", Director: "Ava Moreau", Synopsis: "An animated fable about a girl who folds the night sky.", Duration: 82, Genre: "Animation", Status: model.FilmApproved},
	{Title: "Field Notes", Director: "Ava Moreau", Synopsis: "A year with the last shepherds of the high plateau.", Duration: 71, Genre: "Documentary", Status: model.FilmPending},
	{Title: "Static", Director: "Ava Moreau", Synopsis: "A radio host receives calls from tomorrow.", Duration: 88, Genre: "Sci-Fi", Status: model.FilmRejected},
}

// Result reports what Demo created.
type Result struct {
	Users   map[model.Role]model.User
	Films   []model.Film
	Tickets []model.Ticket
}

// Demo inserts the demo data.  Films belong to the demo filmmaker and two
// tickets for approved films belong to the demo buyer.
func Demo(store *repository.Store, bcryptCost int, unitPrice int64) (Result, error) {
	res := Result{Users: make(map[model.Role]model.User, len(Accounts))}
	for _, a := range Accounts {
		hash, err := utils.HashPassword(a.Password, bcryptCost)
		if err != nil {
			return res, fmt.Errorf("hash password for %s: %w", a.Email, err)
		}
		u, err := store.CreateUser(model.User{Email: a.Email, PasswordHash: hash, Name: a.Name, Role: a.Role})
		if err != nil {
			return res, fmt.Errorf("create %s: %w", a.Email, err)
		}
		res.Users[a.Role] = u
	}

	for _, f := range films {
		f.SubmitterID = res.Users[model.RoleSubmitter].ID
		res.Films = append(res.Films, store.CreateFilm(f))
	}

	screening := time.Now().UTC().Truncate(24 * time.Hour).Add(7*24*time.Hour + 19*time.Hour)
	for i, qty := range []int{2, 1} {
		t, err := store.PurchaseTicket(model.Ticket{
			FilmID:      res.Films[i].ID,
			BuyerID:     res.Users[model.RoleBuyer].ID,
			Price:       unitPrice,
			Quantity:    qty,
			Status:      model.TicketConfirmed,
			SessionTime: screening.Add(time.Duration(i) * 24 * time.Hour),
		})
		if err != nil {
			return res, fmt.Errorf("create demo ticket: %w", err)
		}
		res.Tickets = append(res.Tickets, t)
	}
	return res, nil
}
