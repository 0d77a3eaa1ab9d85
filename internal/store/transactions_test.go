package store_test

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/gyaneshwarpardhi/fintrack/internal/ledger"
	"github.com/gyaneshwarpardhi/fintrack/internal/store"
)

func ptr[T any](v T) *T { return &v }

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTxStore() *store.TransactionStore {
	return store.NewTransactionStore(store.WithClock(func() time.Time { return fixedNow }))
}

func mustCreate(t *testing.T, s *store.TransactionStore, in ledger.CreateTransactionInput) ledger.Transaction {
	t.Helper()
	tx, err := s.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	return tx
}

func salary() ledger.CreateTransactionInput {
	return ledger.CreateTransactionInput{
		Description: "Salary",
		Amount:      ptr(100.0),
		Type:        ledger.Income,
		Category:    ptr("Salary"),
		Date:        ptr("2025-06-01T09:00:00Z"),
	}
}

func TestTransactionCreate_AssignsUniqueRetrievableIDs(t *testing.T) {
	ctx := context.Background()
	s := newTxStore()

	seen := make(map[int64]bool)
	for i := 0; i < 50; i++ {
		tx := mustCreate(t, s, salary())
		if seen[tx.ID] {
			t.Fatalf("duplicate id %d", tx.ID)
		}
		seen[tx.ID] = true

		got, err := s.Get(ctx, tx.ID)
		if err != nil {
			t.Fatalf("Get(%d): %v", tx.ID, err)
		}
		if !reflect.DeepEqual(got, tx) {
			t.Errorf("Get returned %+v, Create returned %+v", got, tx)
		}
	}
}

func TestTransactionCreate_Defaults(t *testing.T) {
	s := newTxStore()

	tx := mustCreate(t, s, ledger.CreateTransactionInput{
		Description: "Coffee",
		Amount:      ptr(0.0),
		Type:        ledger.Expense,
		Category:    ptr(""),
		Date:        ptr(""),
	})
	if tx.Amount != 0 {
		t.Errorf("amount = %v, want 0", tx.Amount)
	}
	if tx.Category != nil {
		t.Errorf("empty category should be stored as nil, got %q", *tx.Category)
	}
	if !tx.Date.Equal(fixedNow) {
		t.Errorf("date = %s, want %s", tx.Date, fixedNow)
	}
}

func TestTransactionCreate_Validation(t *testing.T) {
	cases := []struct {
		name string
		in   ledger.CreateTransactionInput
	}{
		{name: "empty description", in: ledger.CreateTransactionInput{Amount: ptr(1.0), Type: ledger.Income}},
		{name: "missing amount", in: ledger.CreateTransactionInput{Description: "x", Type: ledger.Income}},
		{name: "missing type", in: ledger.CreateTransactionInput{Description: "x", Amount: ptr(1.0)}},
		{name: "unknown type", in: ledger.CreateTransactionInput{Description: "x", Amount: ptr(1.0), Type: "transfer"}},
		{name: "bad date", in: ledger.CreateTransactionInput{Description: "x", Amount: ptr(1.0), Type: ledger.Expense, Date: ptr("yesterday")}},
		{name: "date past year 9999 in utc", in: ledger.CreateTransactionInput{Description: "x", Amount: ptr(1.0), Type: ledger.Expense, Date: ptr("9999-12-31T23:30:00-01:00")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTxStore()
			mustCreate(t, s, salary())

			_, err := s.Create(context.Background(), tc.in)
			if !ledger.IsValidation(err) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if s.Len() != 1 {
				t.Errorf("store length changed to %d", s.Len())
			}
		})
	}
}

func TestTransactionUpdate_OnlyAmount(t *testing.T) {
	ctx := context.Background()
	s := newTxStore()
	orig := mustCreate(t, s, salary())

	got, err := s.Update(ctx, orig.ID, ledger.UpdateTransactionInput{Amount: ptr(42.0)})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	want := orig
	want.Amount = 42
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
	stored, _ := s.Get(ctx, orig.ID)
	if !reflect.DeepEqual(stored, want) {
		t.Errorf("stored %+v, want %+v", stored, want)
	}
}

func TestTransactionUpdate_OverwritesFalsyValues(t *testing.T) {
	ctx := context.Background()
	s := newTxStore()
	orig := mustCreate(t, s, salary())

	got, err := s.Update(ctx, orig.ID, ledger.UpdateTransactionInput{
		Description: ptr(""),
		Amount:      ptr(0.0),
		Type:        ptr(ledger.Kind("refund")),
		Category:    ptr(""),
		Date:        ptr("2025-01-02"),
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Description != "" || got.Amount != 0 || got.Type != "refund" {
		t.Errorf("falsy values not applied: %+v", got)
	}
	if got.Category == nil || *got.Category != "" {
		t.Errorf("category = %v, want empty string", got.Category)
	}
	if got.Date.String() != "2025-01-02T00:00:00.000Z" {
		t.Errorf("date = %s", got.Date)
	}
}

func TestTransactionUpdate_Errors(t *testing.T) {
	ctx := context.Background()
	s := newTxStore()
	orig := mustCreate(t, s, salary())

	if _, err := s.Update(ctx, orig.ID+1000, ledger.UpdateTransactionInput{Amount: ptr(1.0)}); !errors.Is(err, ledger.ErrNotFound) {
		t.Errorf("unknown id: expected ErrNotFound, got %v", err)
	}
	if _, err := s.Update(ctx, orig.ID, ledger.UpdateTransactionInput{}); !ledger.IsValidation(err) {
		t.Errorf("empty update: expected ValidationError, got %v", err)
	}
	if _, err := s.Update(ctx, orig.ID, ledger.UpdateTransactionInput{Amount: ptr(5.0), Date: ptr("soon")}); !ledger.IsValidation(err) {
		t.Errorf("bad date: expected ValidationError, got %v", err)
	}

	stored, _ := s.Get(ctx, orig.ID)
	if !reflect.DeepEqual(stored, orig) {
		t.Errorf("failed updates mutated record: %+v", stored)
	}
}

func TestTransactionDelete(t *testing.T) {
	ctx := context.Background()
	s := newTxStore()
	a := mustCreate(t, s, salary())
	b := mustCreate(t, s, salary())

	removed, err := s.Delete(ctx, a.ID)
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if removed.ID != a.ID {
		t.Errorf("removed id %d, want %d", removed.ID, a.ID)
	}
	if s.Len() != 1 {
		t.Errorf("len = %d, want 1", s.Len())
	}
	if _, err := s.Get(ctx, a.ID); !errors.Is(err, ledger.ErrNotFound) {
		t.Errorf("Get after delete: expected ErrNotFound, got %v", err)
	}
	if _, err := s.Delete(ctx, a.ID); !errors.Is(err, ledger.ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}

	list, _ := s.List(ctx)
	if len(list) != 1 || list[0].ID != b.ID {
		t.Errorf("list = %+v, want only %d", list, b.ID)
	}
}

func TestTransactionList_InsertionOrderAndCopy(t *testing.T) {
	ctx := context.Background()
	s := newTxStore()
	late := salary()
	late.Date = ptr("2030-01-01")
	early := salary()
	early.Date = ptr("2000-01-01")
	a := mustCreate(t, s, late)
	b := mustCreate(t, s, early)

	list, _ := s.List(ctx)
	if len(list) != 2 || list[0].ID != a.ID || list[1].ID != b.ID {
		t.Fatalf("list not in insertion order: %+v", list)
	}
	list[0].Description = "mutated"
	again, _ := s.List(ctx)
	if again[0].Description == "mutated" {
		t.Errorf("List exposed internal storage")
	}
}

func TestTransactionCategoryNotShared(t *testing.T) {
	ctx := context.Background()
	s := newTxStore()
	in := salary()
	created := mustCreate(t, s, in)

	*in.Category = "from input"
	*created.Category = "from create"
	list, _ := s.List(ctx)
	*list[0].Category = "from list"
	got, _ := s.Get(ctx, created.ID)
	*got.Category = "from get"
	updated, err := s.Update(ctx, created.ID, ledger.UpdateTransactionInput{Amount: ptr(1.0)})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	*updated.Category = "from update"

	stored, _ := s.Get(ctx, created.ID)
	if *stored.Category != "Salary" {
		t.Errorf("stored category = %q, want Salary", *stored.Category)
	}
}

func TestTransactionConcurrentCreateDelete(t *testing.T) {
	ctx := context.Background()
	s := store.NewTransactionStore()
	const workers, perWorker = 8, 100

	var mu sync.Mutex
	seen := make(map[int64]bool, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				tx, err := s.Create(ctx, salary())
				if err != nil {
					t.Errorf("Create error: %v", err)
					return
				}
				mu.Lock()
				if seen[tx.ID] {
					t.Errorf("duplicate id %d", tx.ID)
				}
				seen[tx.ID] = true
				mu.Unlock()

				// Remove every other record while others are still writing.
				if i%2 == 0 {
					if _, err := s.Delete(ctx, tx.ID); err != nil {
						t.Errorf("Delete(%d) error: %v", tx.ID, err)
					}
				}
				_, _ = s.List(ctx)
			}
		}()
	}
	wg.Wait()

	want := workers * perWorker / 2
	if s.Len() != want {
		t.Errorf("len = %d, want %d", s.Len(), want)
	}
	list, _ := s.List(ctx)
	if len(list) != want {
		t.Errorf("list length = %d, want %d", len(list), want)
	}
}
