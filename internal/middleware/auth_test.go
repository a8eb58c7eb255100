package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/film-festival/internal/auth"
	"github.com/iliyamo/film-festival/internal/model"
	"github.com/iliyamo/film-festival/internal/repository"
	"github.com/iliyamo/film-festival/internal/session"
)

func TestSessionAuthAndPermissions(t *testing.T) {
	store := repository.New()
	sessions := session.NewManager(store, time.Hour, nil)
	authn := auth.NewAuthenticator(sessions, store, bcrypt.MinCost)

	admin, _ := store.CreateUser(model.User{Email: "a@x", Role: model.RoleAdmin})
	buyer, _ := store.CreateUser(model.User{Email: "b@x", Role: model.RoleBuyer})
	adminSess, _ := sessions.Create(admin.ID)
	buyerSess, _ := sessions.Create(buyer.ID)

	e := echo.New()
	ok := func(c echo.Context) error {
		u, _ := CurrentUser(c)
		if CurrentToken(c) == "" {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.String(http.StatusOK, u.ID)
	}
	e.GET("/admin", ok, SessionAuth(authn, model.RoleAdmin))
	e.GET("/any", ok, SessionAuth(authn, ""))
	e.GET("/stats", ok, SessionAuth(authn, ""), RequirePermission(model.PermStatsView))
	e.GET("/nouser", ok, RequirePermission(model.PermStatsView))
	e.GET("/optional", func(c echo.Context) error {
		if tok := CurrentToken(c); tok != "" {
			return c.String(http.StatusOK, tok)
		}
		return c.String(http.StatusAccepted, "anonymous")
	}, OptionalSession(authn))

	tests := []struct {
		path   string
		token  string
		status int
	}{
		{"/admin", "", http.StatusUnauthorized},
		{"/admin", "garbage", http.StatusUnauthorized},
		{"/admin", buyerSess.Token, http.StatusForbidden},
		{"/admin", adminSess.Token, http.StatusOK},
		{"/any", buyerSess.Token, http.StatusOK},
		{"/stats", buyerSess.Token, http.StatusForbidden},
		{"/stats", adminSess.Token, http.StatusOK},
		{"/nouser", adminSess.Token, http.StatusUnauthorized},
		{"/optional", "", http.StatusAccepted},
		{"/optional", "garbage", http.StatusAccepted},
		{"/optional", buyerSess.Token, http.StatusOK},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		if tt.token != "" {
			req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: tt.token})
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != tt.status {
			t.Errorf("GET %s with %q: status = %d, want %d", tt.path, tt.token, rec.Code, tt.status)
		}
	}
}
