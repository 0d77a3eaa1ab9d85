package store

import (
	"time"
)

// records is an insertion-ordered slice of values keyed by an int64 id.
// It does no locking; the owning store holds the mutex. Every value handed
// out passes through clone, so callers never share memory with the store.
type records[T any] struct {
	items []T
	idOf  func(T) int64
	clone func(T) T
}

func (r *records[T]) at(i int) T {
	return r.clone(r.items[i])
}

func (r *records[T]) indexOf(id int64) int {
	for i, item := range r.items {
		if r.idOf(item) == id {
			return i
		}
	}
	return -1
}

func (r *records[T]) all() []T {
	out := make([]T, len(r.items))
	for i, item := range r.items {
		out[i] = r.clone(item)
	}
	return out
}

// add stores its own copy of item and returns another for the caller.
func (r *records[T]) add(item T) T {
	r.items = append(r.items, r.clone(item))
	return r.clone(item)
}

func (r *records[T]) set(i int, item T) T {
	r.items[i] = r.clone(item)
	return r.clone(item)
}

func (r *records[T]) removeAt(i int) T {
	removed := r.items[i]
	r.items = append(r.items[:i], r.items[i+1:]...)
	return removed
}

// Option configures a store.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the clock used for id generation and default dates.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
