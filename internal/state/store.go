package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/flip/internal/feed"
)

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Items               []feed.Item
	HasItems            bool // true once a fetch has succeeded
	Loading             bool // a fetch is in flight
	Fetches             int  // completed fetches, successful or not
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// IsOffline returns true when the feed has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// BeginFetch marks a fetch as in flight.
func (s *Store) BeginFetch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Loading = true
}

// Update records the result of a fetch and clears the loading flag. When err
// is non-nil the previous items are kept but the error is recorded for
// visibility.
func (s *Store) Update(items []feed.Item, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Loading = false
	s.snapshot.Fetches++
	s.snapshot.LastUpdated = time.Now()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Items = cloneItems(items)
	s.snapshot.HasItems = true
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Items = cloneItems(s.snapshot.Items)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneItems(items []feed.Item) []feed.Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]feed.Item, len(items))
	copy(dup, items)
	return dup
}
