// Package queue defines message payloads exchanged over the message broker
// and the publisher and consumer of the ticket.purchased queue.
package queue

// TicketQueueName is the durable queue checkout events are sent to.
const TicketQueueName = "ticket.purchased"

// TicketPurchasedEvent is published when checkout confirms a ticket.  It
// carries enough information for downstream consumers to log, notify or
// feed analytics without querying the store.
type TicketPurchasedEvent struct {
	TicketID       string `json:"ticket_id"`
	FilmID         string `json:"film_id"`
	FilmTitle      string `json:"film_title"`
	BuyerID        string `json:"buyer_id"`
	BuyerEmail     string `json:"buyer_email"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	TotalCents     int64  `json:"total_cents"`
	SessionTime    string `json:"session_time"`
	PurchasedAt    string `json:"purchased_at"`
}
