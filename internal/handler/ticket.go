package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/film-festival/internal/middleware"
	"github.com/iliyamo/film-festival/internal/model"
	"github.com/iliyamo/film-festival/internal/queue"
	"github.com/iliyamo/film-festival/internal/repository"
)

// TicketEvents receives checkout notifications.
type TicketEvents interface {
	PublishTicketPurchased(ctx context.Context, ev queue.TicketPurchasedEvent) error
}

// publishTimeout bounds a single asynchronous event publish.
const publishTimeout = 5 * time.Second

// maxTicketsPerOrder caps the seats of one checkout.
const maxTicketsPerOrder = 20

// TicketHandler serves checkout and the buyer's ticket list.  Payment is
// simulated: a valid checkout confirms the ticket immediately.
type TicketHandler struct {
	Store     *repository.Store
	UnitPrice int64        // cents
	Events    TicketEvents // optional
	Log       *zap.Logger

	pending sync.WaitGroup // in-flight publishes
}

// NewTicketHandler constructs a TicketHandler.  events may be nil.
func NewTicketHandler(store *repository.Store, unitPrice int64, events TicketEvents, log *zap.Logger) *TicketHandler {
	if store == nil {
		panic("nil repository passed to NewTicketHandler")
	}
	if unitPrice <= 0 {
		panic("ticket unit price must be positive")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &TicketHandler{Store: store, UnitPrice: unitPrice, Events: events, Log: log}
}

type checkoutReq struct {
	FilmID      string `json:"filmId"`
	Quantity    int    `json:"quantity"`
	SessionTime string `json:"sessionTime"`
}

type filmSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Director  string `json:"director"`
	Genre     string `json:"genre"`
	Duration  int    `json:"duration"`
	PosterURL string `json:"posterUrl,omitempty"`
}

type ticketView struct {
	model.Ticket
	Film *filmSummary `json:"film"`
}

func summarize(f model.Film) *filmSummary {
	return &filmSummary{ID: f.ID, Title: f.Title, Director: f.Director, Genre: f.Genre, Duration: f.Duration, PosterURL: f.PosterURL}
}

// Checkout handles POST /api/checkout.  The film must exist and be
// approved; the ticket is priced at the fixed unit price and created
// confirmed.  The response carries the ticket and the total price.
func (h *TicketHandler) Checkout(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req checkoutReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.FilmID = strings.TrimSpace(req.FilmID)
	if req.FilmID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "filmId is required"})
	}
	if req.Quantity <= 0 || req.Quantity > maxTicketsPerOrder {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": fmt.Sprintf("quantity must be between 1 and %d", maxTicketsPerOrder)})
	}
	sessionTime, err := time.Parse(time.RFC3339, strings.TrimSpace(req.SessionTime))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "sessionTime must be an RFC 3339 timestamp"})
	}

	t, err := h.Store.PurchaseTicket(model.Ticket{
		FilmID:      req.FilmID,
		BuyerID:     u.ID,
		Price:       h.UnitPrice,
		Quantity:    req.Quantity,
		Status:      model.TicketConfirmed,
		SessionTime: sessionTime.UTC(),
	})
	switch {
	case errors.Is(err, repository.ErrFilmNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "film not found"})
	case errors.Is(err, repository.ErrFilmNotApproved):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "film is not available for purchase"})
	case err != nil:
		return err
	}

	film, _ := h.Store.GetFilmByID(t.FilmID)
	h.publish(u, film, t)
	return c.JSON(http.StatusCreated, echo.Map{
		"ticket":     ticketView{Ticket: t, Film: summarize(film)},
		"totalPrice": t.Total(),
	})
}

// publish sends the checkout event in the background; the buyer's
// response never waits for the broker.
func (h *TicketHandler) publish(u model.User, f model.Film, t model.Ticket) {
	if h.Events == nil {
		return
	}
	ev := queue.TicketPurchasedEvent{
		TicketID:       t.ID,
		FilmID:         f.ID,
		FilmTitle:      f.Title,
		BuyerID:        u.ID,
		BuyerEmail:     u.Email,
		Quantity:       t.Quantity,
		UnitPriceCents: t.Price,
		TotalCents:     t.Total(),
		SessionTime:    t.SessionTime.Format(time.RFC3339),
		PurchasedAt:    t.PurchasedAt.Format(time.RFC3339),
	}
	h.pending.Add(1)
	go func() {
		defer h.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		_ = h.Events.PublishTicketPurchased(ctx, ev)
	}()
}

// Drain waits for in-flight event publishes to finish.  It returns
// ctx.Err() if ctx ends first; the publishes themselves are bounded by
// publishTimeout.
func (h *TicketHandler) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		h.pending.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		h.Log.Warn("ticket events still in flight at shutdown")
		return ctx.Err()
	}
}

// BuyerTickets handles GET /api/tickets and /api/buyer/tickets: the
// caller's tickets with film details, earliest screening first.
func (h *TicketHandler) BuyerTickets(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	tickets := h.Store.GetTicketsByBuyer(u.ID)
	sort.Slice(tickets, func(i, j int) bool {
		if !tickets[i].SessionTime.Equal(tickets[j].SessionTime) {
			return tickets[i].SessionTime.Before(tickets[j].SessionTime)
		}
		return tickets[i].PurchasedAt.Before(tickets[j].PurchasedAt)
	})
	out := make([]ticketView, 0, len(tickets))
	for _, t := range tickets {
		v := ticketView{Ticket: t}
		if f, ok := h.Store.GetFilmByID(t.FilmID); ok {
			v.Film = summarize(f)
		}
		out = append(out, v)
	}
	return c.JSON(http.StatusOK, out)
}
