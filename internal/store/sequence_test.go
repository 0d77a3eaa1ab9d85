package store

import (
	"sync"
	"testing"
	"time"
)

func TestSequence_FrozenClock(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := newSequence(func() time.Time { return at })

	first := s.next()
	if first != at.UnixMilli() {
		t.Fatalf("first id = %d, want %d", first, at.UnixMilli())
	}
	for i := int64(1); i <= 5; i++ {
		if got := s.next(); got != first+i {
			t.Errorf("id %d = %d, want %d", i, got, first+i)
		}
	}
}

func TestSequence_ClockGoesBackwards(t *testing.T) {
	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := newSequence(func() time.Time { return clock })

	a := s.next()
	clock = clock.Add(-time.Hour)
	b := s.next()
	if b <= a {
		t.Errorf("ids went backwards: %d then %d", a, b)
	}
}

func TestSequence_Concurrent(t *testing.T) {
	s := newSequence(time.Now)
	const workers, perWorker = 8, 500

	var mu sync.Mutex
	seen := make(map[int64]bool, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]int64, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, s.next())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range local {
				if seen[id] {
					t.Errorf("duplicate id %d", id)
				}
				seen[id] = true
			}
		}()
	}
	wg.Wait()
	if len(seen) != workers*perWorker {
		t.Errorf("got %d unique ids, want %d", len(seen), workers*perWorker)
	}
}
