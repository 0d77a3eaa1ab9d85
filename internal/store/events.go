package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/gyaneshwarpardhi/fintrack/internal/ledger"
)

// EventStore holds upcoming financial events in memory. Events are never
// updated in place; they are created and deleted.
type EventStore struct {
	mu   sync.RWMutex
	recs records[ledger.Event]
	ids  *sequence
}

// NewEventStore returns an empty store.
func NewEventStore(opts ...Option) *EventStore {
	o := buildOptions(opts)
	return &EventStore{
		recs: records[ledger.Event]{
			idOf:  func(e ledger.Event) int64 { return e.ID },
			clone: func(e ledger.Event) ledger.Event { return e },
		},
		ids: newSequence(o.now),
	}
}

// List returns every event in storage order.
func (s *EventStore) List(_ context.Context) ([]ledger.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recs.all(), nil
}

// Create validates input, assigns an id and appends the new event.
// Unlike transactions, the date has no default.
func (s *EventStore) Create(_ context.Context, in ledger.CreateEventInput) (ledger.Event, error) {
	if in.Name == "" || in.Date == nil || *in.Date == "" || in.Amount == nil {
		return ledger.Event{}, ledger.Invalid("name, date and amount are required")
	}
	date, err := ledger.ParseTimestamp(*in.Date)
	if err != nil {
		return ledger.Event{}, ledger.Invalid("date: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ev := ledger.Event{
		ID:     s.ids.next(),
		Name:   in.Name,
		Date:   date,
		Amount: *in.Amount,
	}
	return s.recs.add(ev), nil
}

// Delete removes the event with the given id and returns it.
func (s *EventStore) Delete(_ context.Context, id int64) (ledger.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.recs.indexOf(id)
	if i < 0 {
		return ledger.Event{}, fmt.Errorf("event %d: %w", id, ledger.ErrNotFound)
	}
	return s.recs.removeAt(i), nil
}

// Len returns the number of events held.
func (s *EventStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recs.items)
}
