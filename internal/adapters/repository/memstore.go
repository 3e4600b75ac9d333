package repository

import (
	"context"
	"sync"
	"time"

	"github.com/floorcraft/danceboard/internal/domain/model"
	"github.com/floorcraft/danceboard/pkg/metrics"
)

// MemStore implements Store with a snapshot slice under a RWMutex.
// A dance directory dataset is a few hundred records replaced at most a few
// times a day, so a copy-on-replace snapshot is the whole story.
type MemStore struct {
	mu     sync.RWMutex
	events []model.Event
	info   LoadInfo

	now func() time.Time
}

// NewMemStore creates an empty in-memory store.
func NewMemStore(_ context.Context, opts ...Option) *MemStore {
	s := &MemStore{
		events: []model.Event{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Replace swaps the canonical dataset wholesale with a copy of events.
func (s *MemStore) Replace(_ context.Context, events []model.Event) {
	snapshot := make([]model.Event, len(events))
	copy(snapshot, events)

	loadedAt := s.now()

	s.mu.Lock()
	s.events = snapshot
	s.info.At = loadedAt
	s.info.Loads++
	s.mu.Unlock()

	metrics.UpdateDatasetSize(len(snapshot))
	metrics.UpdateLastLoadTime(loadedAt.Unix())
}

// Snapshot returns the current canonical dataset. Callers must not mutate
// the returned slice.
func (s *MemStore) Snapshot(_ context.Context) []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.events
}

// Count returns the number of events in the canonical dataset.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

// LastLoad returns metadata about the most recent replacement.
func (s *MemStore) LastLoad(_ context.Context) LoadInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.info
}
