package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHandleMessageAppendsLine(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	c := NewConsumer("amqp://unused", dir, nil)

	ev := TicketPurchasedEvent{
		TicketID:    "t-1",
		FilmID:      "f-1",
		FilmTitle:   "Neon Tide",
		BuyerID:     "b-1",
		Quantity:    2,
		TotalCents:  3000,
		SessionTime: "2026-11-20T19:30:00Z",
		PurchasedAt: "2026-10-01T10:00:00Z",
	}
	body, err := json.Marshal(ev)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if err := c.handleMessage(body); err != nil {
			t.Fatalf("handleMessage: %v", err)
		}
	}

	bs, err := os.ReadFile(filepath.Join(dir, ticketLogFile))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(bs), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), bs)
	}
	for _, want := range []string{"ticket_id=t-1", `film="Neon Tide"`, "quantity=2", "total=3000 cents"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("line %q missing %q", lines[0], want)
		}
	}
}

func TestHandleMessageRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	c := NewConsumer("amqp://unused", dir, nil)
	if err := c.handleMessage([]byte("not json")); err == nil {
		t.Fatal("expected an error for a malformed body")
	}
	if _, err := os.Stat(filepath.Join(dir, ticketLogFile)); !os.IsNotExist(err) {
		t.Fatalf("log file created for a rejected message: %v", err)
	}
}

func TestEventWireFormat(t *testing.T) {
	bs, err := json.Marshal(TicketPurchasedEvent{TicketID: "t", UnitPriceCents: 1500})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(bs, &m); err != nil {
		t.Fatal(err)
	}
	if m["ticket_id"] != "t" || m["unit_price_cents"] != float64(1500) {
		t.Fatalf("wire format = %s", bs)
	}
}
