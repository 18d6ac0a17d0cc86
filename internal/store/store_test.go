package store

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"solar-quote/internal/model"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestStore() (*Store, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	return New(WithClock(clock.Now)), clock
}

func TestStore_CreateGet(t *testing.T) {
	s, clock := newTestStore()

	q := s.Create(model.Customer{Name: "Dana", Company: "Farm Ltd"}, "admin", model.QuoteInput{StorageKWh: model.Float(800)})
	_, err := uuid.Parse(q.ID)
	require.NoError(t, err)
	require.Equal(t, clock.Now(), q.Created)
	require.Equal(t, 0, q.Views)

	got, err := s.Get(q.ID)
	require.NoError(t, err)
	require.Equal(t, q, got)
	require.Equal(t, 800.0, *got.Params.StorageKWh)

	_, err = s.Get("missing")
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestStore_ListNewestFirst(t *testing.T) {
	s, clock := newTestStore()

	a := s.Create(model.Customer{Name: "A"}, "", model.QuoteInput{})
	clock.Advance(time.Hour)
	b := s.Create(model.Customer{Name: "B"}, "", model.QuoteInput{})
	clock.Advance(time.Hour)
	c := s.Create(model.Customer{Name: "C"}, "", model.QuoteInput{})

	list := s.List()
	require.Len(t, list, 3)
	require.Equal(t, []string{c.ID, b.ID, a.ID}, []string{list[0].ID, list[1].ID, list[2].ID})
}

func TestStore_TrackView(t *testing.T) {
	s, clock := newTestStore()
	q := s.Create(model.Customer{Name: "A"}, "", model.QuoteInput{})

	clock.Advance(time.Minute)
	first := clock.Now()
	v1, err := s.TrackView(q.ID)
	require.NoError(t, err)
	require.Equal(t, 1, v1.Views)
	require.Equal(t, first, *v1.FirstViewed)
	require.Equal(t, first, *v1.LastViewed)

	clock.Advance(time.Minute)
	v2, err := s.TrackView(q.ID)
	require.NoError(t, err)
	require.Equal(t, 2, v2.Views)
	require.Equal(t, first, *v2.FirstViewed)
	require.Equal(t, clock.Now(), *v2.LastViewed)

	// returned copies are not aliased to store state
	require.Equal(t, first, *v1.LastViewed)

	_, err = s.TrackView("missing")
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestStore_UpdateDelete(t *testing.T) {
	s, _ := newTestStore()
	q := s.Create(model.Customer{Name: "A"}, "", model.QuoteInput{})

	updated, err := s.UpdateParams(q.ID, model.QuoteInput{LoanPct: model.Float(30)})
	require.NoError(t, err)
	require.Equal(t, 30.0, *updated.Params.LoanPct)

	require.NoError(t, s.Delete(q.ID))
	require.True(t, errors.Is(s.Delete(q.ID), ErrNotFound))
	_, err = s.UpdateParams(q.ID, model.QuoteInput{})
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestStore_Stats(t *testing.T) {
	s, _ := newTestStore()
	require.Equal(t, Stats{}, s.Stats())

	a := s.Create(model.Customer{Name: "A"}, "", model.QuoteInput{})
	s.Create(model.Customer{Name: "B"}, "", model.QuoteInput{})
	_, err := s.TrackView(a.ID)
	require.NoError(t, err)
	_, err = s.TrackView(a.ID)
	require.NoError(t, err)

	require.Equal(t, Stats{Total: 2, Viewed: 1, Pending: 1}, s.Stats())
}

func TestStore_ConcurrentViews(t *testing.T) {
	s, _ := newTestStore()
	q := s.Create(model.Customer{Name: "A"}, "", model.QuoteInput{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.TrackView(q.ID)
		}()
	}
	wg.Wait()

	got, err := s.Get(q.ID)
	require.NoError(t, err)
	require.Equal(t, 50, got.Views)
}
