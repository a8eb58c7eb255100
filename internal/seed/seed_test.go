package seed

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/film-festival/internal/model"
	"github.com/iliyamo/film-festival/internal/repository"
	"github.com/iliyamo/film-festival/internal/utils"
)

func TestDemo(t *testing.T) {
	store := repository.New()
	res, err := Demo(store, bcrypt.MinCost, 1500)
	if err != nil {
		t.Fatalf("Demo: %v", err)
	}
	for _, a := range Accounts {
		u, ok := store.GetUserByEmail(a.Email)
		if !ok || u.Role != a.Role {
			t.Fatalf("account %s: %+v, %v", a.Email, u, ok)
		}
		if u.PasswordHash == a.Password || !utils.VerifyPassword(u.PasswordHash, a.Password) {
			t.Fatalf("account %s: password not stored as a bcrypt hash", a.Email)
		}
	}
	if n := len(store.GetFilms(repository.FilmFilter{Status: model.FilmApproved})); n != 3 {
		t.Fatalf("approved films = %d, want 3", n)
	}
	buyer := res.Users[model.RoleBuyer]
	if n := len(store.GetTicketsByBuyer(buyer.ID)); n != 2 {
		t.Fatalf("buyer tickets = %d, want 2", n)
	}

	if _, err := Demo(store, bcrypt.MinCost, 1500); err == nil {
		t.Fatal("seeding twice must fail on duplicate emails")
	}
}
