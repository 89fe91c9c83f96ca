package feed

import (
	"sync"
	"time"

	"roomboard/models"
)

// Store holds the last-known-good snapshot. Mutation is always a full
// replace under the lock; readers get the whole value, so a render never
// mixes rooms from one poll with bookings from another.
type Store struct {
	mu     sync.RWMutex
	snap   models.Snapshot
	status PollStatus
}

// NewStore returns an empty store. Until the first successful poll (or
// cache seed) consumers see a zero snapshot, which renders an empty grid.
func NewStore() *Store {
	return &Store{}
}

// Replace swaps in a fresh snapshot, bumping the version counter.
func (s *Store) Replace(rooms []models.Room, bookings []models.Booking, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = models.Snapshot{
		Rooms:     rooms,
		Bookings:  bookings,
		Version:   s.snap.Version + 1,
		FetchedAt: at,
	}
	s.status = PollStatus{OK: true, At: at}
}

// Seed installs a cached snapshot without marking a successful poll, and
// only when the store is still empty. Real poll data always wins.
func (s *Store) Seed(snap models.Snapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap.Version != 0 {
		return false
	}
	snap.Version = 1
	s.snap = snap
	s.status = PollStatus{OK: true, At: snap.FetchedAt, FromCache: true}
	return true
}

// RecordFailure notes a failed poll. The snapshot is untouched; the next
// scheduled poll is the retry mechanism.
func (s *Store) RecordFailure(err error, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = PollStatus{OK: false, At: at, Error: err.Error()}
}

// Current returns the snapshot by value.
func (s *Store) Current() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Status returns the most recent poll outcome.
func (s *Store) Status() PollStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}
