package store

import (
	"sync"
	"time"

	"rivalwatch/internal/types"
)

// MemorySnapshotStore is an in-memory SnapshotStore with file-store semantics,
// used as a test double and for dry runs.
type MemorySnapshotStore struct {
	mu        sync.Mutex
	histories map[types.Domain][]types.HistoryEntry
	failNext  error
}

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{histories: map[types.Domain][]types.HistoryEntry{}}
}

// FailNext makes the next call return err once; lets tests exercise the
// partial-failure path.
func (s *MemorySnapshotStore) FailNext(err error) {
	s.mu.Lock()
	s.failNext = err
	s.mu.Unlock()
}

func (s *MemorySnapshotStore) takeFailure() error {
	err := s.failNext
	s.failNext = nil
	return err
}

func (s *MemorySnapshotStore) History(domain types.Domain) ([]types.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return nil, err
	}
	entries := s.histories[domain]
	out := make([]types.HistoryEntry, len(entries))
	copy(out, entries)
	return out, nil
}

func (s *MemorySnapshotStore) Latest(domain types.Domain) (*types.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return nil, err
	}
	return latestEntry(s.histories[domain]), nil
}

func (s *MemorySnapshotStore) AppendHistory(domain types.Domain, entry types.HistoryEntry, window time.Duration, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}
	entries := append(s.histories[domain], entry)
	s.histories[domain] = trimHistory(entries, window, now)
	return nil
}

// MemoryAlertStore is the in-memory AlertStore counterpart.
type MemoryAlertStore struct {
	mu     sync.Mutex
	alerts []types.CompetitiveAlert
}

func NewMemoryAlertStore() *MemoryAlertStore {
	return &MemoryAlertStore{}
}

func (s *MemoryAlertStore) Append(alerts ...types.CompetitiveAlert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = append(s.alerts, alerts...)
	return nil
}

func (s *MemoryAlertStore) Recent(days int, now time.Time) ([]types.CompetitiveAlert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return recentAlerts(s.alerts, days, now), nil
}

// All returns the raw insertion-ordered log (test helper).
func (s *MemoryAlertStore) All() []types.CompetitiveAlert {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.CompetitiveAlert, len(s.alerts))
	copy(out, s.alerts)
	return out
}
