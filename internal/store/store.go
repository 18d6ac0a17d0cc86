package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"solar-quote/internal/model"
)

var ErrNotFound = errors.New("quote not found")

// Quote is a stored quote: who it is for and the parameters it was priced with.
type Quote struct {
	ID          string           `json:"id"`
	Customer    model.Customer   `json:"customer"`
	Rep         string           `json:"rep,omitempty"`
	Params      model.QuoteInput `json:"params"`
	Created     time.Time        `json:"created"`
	Views       int              `json:"views"`
	FirstViewed *time.Time       `json:"first_viewed,omitempty"`
	LastViewed  *time.Time       `json:"last_viewed,omitempty"`
}

// Stats are dashboard counters.
type Stats struct {
	Total   int `json:"total"`
	Viewed  int `json:"viewed"`
	Pending int `json:"pending"`
}

// Store keeps quotes in memory. It is safe for concurrent use.
// Nothing is persisted across restarts.
type Store struct {
	mu     sync.RWMutex
	quotes map[string]*Quote
	now    func() time.Time
}

type Option func(*Store)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(opts ...Option) *Store {
	s := &Store{
		quotes: make(map[string]*Quote),
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Create stores a new quote with a fresh id and creation time.
func (s *Store) Create(customer model.Customer, rep string, params model.QuoteInput) Quote {
	q := &Quote{
		ID:       uuid.NewString(),
		Customer: customer,
		Rep:      rep,
		Params:   params,
		Created:  s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes[q.ID] = q
	return *q
}

func (s *Store) Get(id string) (Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.quotes[id]
	if !ok {
		return Quote{}, ErrNotFound
	}
	return *q, nil
}

// List returns all quotes, newest first.
func (s *Store) List() []Quote {
	s.mu.RLock()
	out := make([]Quote, 0, len(s.quotes))
	for _, q := range s.quotes {
		out = append(out, *q)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Created.Equal(out[j].Created) {
			return out[i].ID < out[j].ID
		}
		return out[i].Created.After(out[j].Created)
	})
	return out
}

// UpdateParams replaces the parameters of an existing quote.
func (s *Store) UpdateParams(id string, params model.QuoteInput) (Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.quotes[id]
	if !ok {
		return Quote{}, ErrNotFound
	}
	q.Params = params
	return *q, nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.quotes[id]; !ok {
		return ErrNotFound
	}
	delete(s.quotes, id)
	return nil
}

// TrackView records a customer view and returns the updated quote.
func (s *Store) TrackView(id string) (Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.quotes[id]
	if !ok {
		return Quote{}, ErrNotFound
	}
	now := s.now().UTC()
	q.Views++
	q.LastViewed = &now
	if q.FirstViewed == nil {
		first := now
		q.FirstViewed = &first
	}
	return *q, nil
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{Total: len(s.quotes)}
	for _, q := range s.quotes {
		if q.Views > 0 {
			st.Viewed++
		}
	}
	st.Pending = st.Total - st.Viewed
	return st
}
