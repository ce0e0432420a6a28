package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"rivalwatch/internal/pkg/jsonutil"
	"rivalwatch/internal/types"
)

const alertsFileName = "competitive-alerts.json"

// FileSnapshotStore keeps one `<domain>-history.json` array per domain under
// dir. Writes are full rewrites via temp+rename, serialized per domain.
type FileSnapshotStore struct {
	dir string

	mu    sync.Mutex
	locks map[types.Domain]*sync.Mutex
}

func NewFileSnapshotStore(dir string) (*FileSnapshotStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir failed: %w", err)
	}
	return &FileSnapshotStore{dir: dir, locks: map[types.Domain]*sync.Mutex{}}, nil
}

func (s *FileSnapshotStore) historyPath(domain types.Domain) string {
	return filepath.Join(s.dir, string(domain)+"-history.json")
}

func (s *FileSnapshotStore) domainLock(domain types.Domain) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[domain]
	if !ok {
		l = &sync.Mutex{}
		s.locks[domain] = l
	}
	return l
}

func (s *FileSnapshotStore) History(domain types.Domain) ([]types.HistoryEntry, error) {
	l := s.domainLock(domain)
	l.Lock()
	defer l.Unlock()
	return s.readHistory(domain)
}

func (s *FileSnapshotStore) Latest(domain types.Domain) (*types.HistoryEntry, error) {
	entries, err := s.History(domain)
	if err != nil {
		return nil, err
	}
	return latestEntry(entries), nil
}

func (s *FileSnapshotStore) AppendHistory(domain types.Domain, entry types.HistoryEntry, window time.Duration, now time.Time) error {
	l := s.domainLock(domain)
	l.Lock()
	defer l.Unlock()
	entries, err := s.readHistory(domain)
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	entries = trimHistory(entries, window, now)
	return jsonutil.WriteFileAtomic(s.historyPath(domain), entries)
}

func (s *FileSnapshotStore) readHistory(domain types.Domain) ([]types.HistoryEntry, error) {
	var entries []types.HistoryEntry
	if err := jsonutil.ReadFile(s.historyPath(domain), &entries); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s history failed: %w", domain, err)
	}
	return entries, nil
}

// FileAlertStore persists the alert log as a single JSON array, rewritten in
// full on every append. Atomic rename keeps readers away from partial writes.
type FileAlertStore struct {
	path string
	mu   sync.Mutex
}

func NewFileAlertStore(dir string) (*FileAlertStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir failed: %w", err)
	}
	return &FileAlertStore{path: filepath.Join(dir, alertsFileName)}, nil
}

func (s *FileAlertStore) Append(alerts ...types.CompetitiveAlert) error {
	if len(alerts) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.readAll()
	if err != nil {
		return err
	}
	all = append(all, alerts...)
	return jsonutil.WriteFileAtomic(s.path, all)
}

func (s *FileAlertStore) Recent(days int, now time.Time) ([]types.CompetitiveAlert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.readAll()
	if err != nil {
		return nil, err
	}
	return recentAlerts(all, days, now), nil
}

func (s *FileAlertStore) readAll() ([]types.CompetitiveAlert, error) {
	var all []types.CompetitiveAlert
	if err := jsonutil.ReadFile(s.path, &all); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read alert log failed: %w", err)
	}
	return all, nil
}
