package repository

import (
	"github.com/iliyamo/film-festival/internal/model"
)

// CreateTicket assigns an ID and purchase time and inserts t without
// validating it.
func (s *Store) CreateTicket(t model.Ticket) model.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertTicketLocked(t)
}

// PurchaseTicket is the checkout unit of work: it verifies that the
// film exists and is approved and inserts t while holding the write
// lock, so a concurrent review cannot slip in between.
func (s *Store) PurchaseTicket(t model.Ticket) (model.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.films[t.FilmID]
	if !ok {
		return model.Ticket{}, ErrFilmNotFound
	}
	if f.Status != model.FilmApproved {
		return model.Ticket{}, ErrFilmNotApproved
	}
	return s.insertTicketLocked(t), nil
}

func (s *Store) insertTicketLocked(t model.Ticket) model.Ticket {
	t.ID = s.newID()
	t.PurchasedAt = s.now()
	s.tickets[t.ID] = t
	return t
}

// GetTicketsByBuyer returns all tickets bought by buyerID.
func (s *Store) GetTicketsByBuyer(buyerID string) []model.Ticket {
	return s.filterTickets(func(t model.Ticket) bool { return t.BuyerID == buyerID })
}

// GetTicketsByFilm returns all tickets sold for filmID.
func (s *Store) GetTicketsByFilm(filmID string) []model.Ticket {
	return s.filterTickets(func(t model.Ticket) bool { return t.FilmID == filmID })
}

// ListTickets returns every ticket.
func (s *Store) ListTickets() []model.Ticket {
	return s.filterTickets(func(model.Ticket) bool { return true })
}

func (s *Store) filterTickets(keep func(model.Ticket) bool) []model.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Ticket, 0)
	for _, t := range s.tickets {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
