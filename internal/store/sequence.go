package store

import (
	"sync/atomic"
	"time"
)

// sequence hands out int64 ids derived from the clock in Unix milliseconds.
// When the clock has not advanced past the last id, it steps by one instead,
// so ids are strictly increasing for the lifetime of the sequence.
type sequence struct {
	last atomic.Int64
	now  func() time.Time
}

func newSequence(now func() time.Time) *sequence {
	return &sequence{now: now}
}

func (s *sequence) next() int64 {
	for {
		last := s.last.Load()
		id := s.now().UnixMilli()
		if id <= last {
			id = last + 1
		}
		if s.last.CompareAndSwap(last, id) {
			return id
		}
	}
}
