package model

import "time"

// TicketStatus is the state of a ticket purchase.
type TicketStatus string

const (
	TicketPending   TicketStatus = "pending"
	TicketConfirmed TicketStatus = "confirmed"
	TicketCancelled TicketStatus = "cancelled"
)

// Ticket records a buyer's purchase of one or more seats for a screening
// of a film.  Tickets are created by checkout and not modified
// afterwards.
//
// Fields:
//  ID          – opaque identifier.
//  FilmID      – film being screened.
//  BuyerID     – purchasing user.
//  Price       – unit price in cents.
//  Quantity    – number of seats, always positive.
//  PurchasedAt – when checkout completed.
//  Status      – pending, confirmed or cancelled.
//  SessionTime – scheduled start of the screening.
type Ticket struct {
	ID          string       `json:"id"`
	FilmID      string       `json:"filmId"`
	BuyerID     string       `json:"buyerId"`
	Price       int64        `json:"price"`
	Quantity    int          `json:"quantity"`
	PurchasedAt time.Time    `json:"purchasedAt"`
	Status      TicketStatus `json:"status"`
	SessionTime time.Time    `json:"sessionTime"`
}

// Total returns the price of all seats on the ticket.
func (t Ticket) Total() int64 {
	return t.Price * int64(t.Quantity)
}
