package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/film-festival/internal/auth"
	"github.com/iliyamo/film-festival/internal/handler"
	"github.com/iliyamo/film-festival/internal/middleware"
	"github.com/iliyamo/film-festival/internal/model"
)

// RegisterBuyer registers checkout and the buyer's ticket list.  The
// ticket list is reachable under both /api/tickets and
// /api/buyer/tickets.
func RegisterBuyer(e *echo.Echo, t *handler.TicketHandler, authn *auth.Authenticator) {
	buyer := middleware.SessionAuth(authn, model.RoleBuyer)

	e.POST("/api/checkout", t.Checkout, buyer, middleware.RequirePermission(model.PermTicketsPurchase))
	e.GET("/api/tickets", t.BuyerTickets, buyer, middleware.RequirePermission(model.PermTicketsViewOwn))

	g := e.Group("/api/buyer", buyer)
	g.GET("/tickets", t.BuyerTickets, middleware.RequirePermission(model.PermTicketsViewOwn))
}
