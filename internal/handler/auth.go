package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/film-festival/internal/auth"
	"github.com/iliyamo/film-festival/internal/middleware"
	"github.com/iliyamo/film-festival/internal/model"
	"github.com/iliyamo/film-festival/internal/repository"
	"github.com/iliyamo/film-festival/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Users        *repository.Store
	Auth         *auth.Authenticator
	BcryptCost   int
	SecureCookie bool // set the Secure flag on the session cookie
}

// NewAuthHandler constructs an AuthHandler and panics if a dependency is nil.
func NewAuthHandler(users *repository.Store, a *auth.Authenticator, bcryptCost int, secureCookie bool) *AuthHandler {
	if users == nil || a == nil {
		panic("nil dependency passed to NewAuthHandler")
	}
	return &AuthHandler{Users: users, Auth: a, BcryptCost: bcryptCost, SecureCookie: secureCookie}
}

// ----- DTOs -----

type registerReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"` // submitter | buyer
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPart struct {
	ID    string     `json:"id"`
	Email string     `json:"email"`
	Name  string     `json:"name"`
	Role  model.Role `json:"role"`
}

func toUserPart(u model.User) userPart {
	return userPart{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

type authResp struct {
	User      userPart  `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

const (
	minPasswordLen = 8
	// bcrypt only accepts passwords up to 72 bytes
	maxPasswordLen = 72
)

// Register creates a submitter or buyer account and logs it in.  Admin
// accounts cannot be self-registered.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email, password and name are required"})
	}
	if !strings.Contains(req.Email, "@") {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid email"})
	}
	if len(req.Password) < minPasswordLen {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "password must be at least 8 characters"})
	}
	if len(req.Password) > maxPasswordLen {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "password must be at most 72 bytes"})
	}
	role, ok := model.ParseRole(req.Role)
	if req.Role == "" {
		role, ok = model.RoleBuyer, true
	}
	if !ok || role == model.RoleAdmin {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "role must be submitter or buyer"})
	}

	hash, err := utils.HashPassword(req.Password, h.BcryptCost)
	if err != nil {
		return err
	}
	u, err := h.Users.CreateUser(model.User{Email: req.Email, PasswordHash: hash, Role: role, Name: req.Name})
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return err
	}
	sess, err := h.Auth.Sessions().Create(u.ID)
	if err != nil {
		return err
	}
	h.setSessionCookie(c, sess)
	return c.JSON(http.StatusCreated, authResp{User: toUserPart(u), Token: sess.Token, ExpiresAt: sess.ExpiresAt})
}

// Login verifies email and password and opens a session.  The token is
// returned in the auth-token cookie and in the body for API clients.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}
	u, sess, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return err
	}
	h.setSessionCookie(c, sess)
	return c.JSON(http.StatusOK, authResp{User: toUserPart(u), Token: sess.Token, ExpiresAt: sess.ExpiresAt})
}

// Logout deletes the caller's session if there is one and always clears
// the cookie.  The session is resolved by OptionalSession.
func (h *AuthHandler) Logout(c echo.Context) error {
	if token := middleware.CurrentToken(c); token != "" {
		h.Auth.Sessions().Delete(token)
	}
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1, // sends Max-Age=0
		HttpOnly: true,
		Secure:   h.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, toUserPart(u))
}

func (h *AuthHandler) setSessionCookie(c echo.Context, sess model.Session) {
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		MaxAge:   int(h.Auth.Sessions().TTL().Seconds()),
		HttpOnly: true,
		Secure:   h.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
