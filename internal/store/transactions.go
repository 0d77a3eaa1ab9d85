package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gyaneshwarpardhi/fintrack/internal/ledger"
)

// TransactionStore holds income and expense records in memory, in insertion order.
type TransactionStore struct {
	mu   sync.RWMutex
	recs records[ledger.Transaction]
	ids  *sequence
	now  func() time.Time
}

// NewTransactionStore returns an empty store.
func NewTransactionStore(opts ...Option) *TransactionStore {
	o := buildOptions(opts)
	return &TransactionStore{
		recs: records[ledger.Transaction]{
			idOf:  func(t ledger.Transaction) int64 { return t.ID },
			clone: ledger.Transaction.Clone,
		},
		ids: newSequence(o.now),
		now: o.now,
	}
}

// List returns every transaction in storage order.
func (s *TransactionStore) List(_ context.Context) ([]ledger.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recs.all(), nil
}

// Get returns the transaction with the given id.
func (s *TransactionStore) Get(_ context.Context, id int64) (ledger.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.recs.indexOf(id)
	if i < 0 {
		return ledger.Transaction{}, fmt.Errorf("transaction %d: %w", id, ledger.ErrNotFound)
	}
	return s.recs.at(i), nil
}

// Create validates input, assigns an id and appends the new record.
func (s *TransactionStore) Create(_ context.Context, in ledger.CreateTransactionInput) (ledger.Transaction, error) {
	if in.Description == "" || in.Amount == nil || in.Type == "" {
		return ledger.Transaction{}, ledger.Invalid("description, amount and type are required")
	}
	if !in.Type.Valid() {
		return ledger.Transaction{}, ledger.Invalid("type must be %q or %q, got %q", ledger.Income, ledger.Expense, in.Type)
	}

	// An empty date counts as absent and defaults to now.
	var date ledger.Timestamp
	hasDate := in.Date != nil && *in.Date != ""
	if hasDate {
		parsed, err := ledger.ParseTimestamp(*in.Date)
		if err != nil {
			return ledger.Transaction{}, ledger.Invalid("date: %v", err)
		}
		date = parsed
	}

	var category *string
	if in.Category != nil && *in.Category != "" {
		c := *in.Category
		category = &c
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !hasDate {
		date = ledger.NewTimestamp(s.now())
	}
	tx := ledger.Transaction{
		ID:          s.ids.next(),
		Description: in.Description,
		Amount:      *in.Amount,
		Type:        in.Type,
		Category:    category,
		Date:        date,
	}
	return s.recs.add(tx), nil
}

// Update overwrites every field present in the input and returns the result.
// Type is not re-validated here; any supplied value is stored.
func (s *TransactionStore) Update(_ context.Context, id int64, in ledger.UpdateTransactionInput) (ledger.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.recs.indexOf(id)
	if i < 0 {
		return ledger.Transaction{}, fmt.Errorf("transaction %d: %w", id, ledger.ErrNotFound)
	}
	if in.Empty() {
		return ledger.Transaction{}, ledger.Invalid("at least one of description, amount, type, category, date required")
	}

	tx := s.recs.at(i)
	if in.Date != nil {
		parsed, err := ledger.ParseTimestamp(*in.Date)
		if err != nil {
			return ledger.Transaction{}, ledger.Invalid("date: %v", err)
		}
		tx.Date = parsed
	}
	if in.Description != nil {
		tx.Description = *in.Description
	}
	if in.Amount != nil {
		tx.Amount = *in.Amount
	}
	if in.Type != nil {
		tx.Type = *in.Type
	}
	if in.Category != nil {
		c := *in.Category
		tx.Category = &c
	}

	return s.recs.set(i, tx), nil
}

// Delete removes the transaction with the given id and returns it.
func (s *TransactionStore) Delete(_ context.Context, id int64) (ledger.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.recs.indexOf(id)
	if i < 0 {
		return ledger.Transaction{}, fmt.Errorf("transaction %d: %w", id, ledger.ErrNotFound)
	}
	return s.recs.removeAt(i), nil
}

// Len returns the number of transactions held.
func (s *TransactionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recs.items)
}
