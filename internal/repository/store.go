package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/film-festival/internal/model"
)

// Store keeps users, films, tickets and sessions in process memory.  One
// Store is constructed at start-up and handed to every component that
// needs it; tests build their own.  A single RWMutex guards all four
// maps so that read-then-write sequences such as the email check in
// CreateUser or the approval check in PurchaseTicket are atomic.
// Records are stored and returned by value so callers never share state
// with the store.
type Store struct {
	mu       sync.RWMutex
	users    map[string]model.User
	films    map[string]model.Film
	tickets  map[string]model.Ticket
	sessions map[string]model.Session // keyed by token

	now   func() time.Time
	newID func() string
}

// Option customizes a Store.
type Option func(*Store)

// WithClock replaces the time source used for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the uuid generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// New returns an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		users:    make(map[string]model.User),
		films:    make(map[string]model.Film),
		tickets:  make(map[string]model.Ticket),
		sessions: make(map[string]model.Session),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
