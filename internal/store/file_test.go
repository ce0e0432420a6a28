package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"rivalwatch/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSnapshotStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileSnapshotStore(dir)
	require.NoError(t, err)
	window := 30 * 24 * time.Hour

	require.NoError(t, s.AppendHistory(types.DomainPricing, entry(now.Add(-time.Hour), `{"categories":[]}`), window, now))
	require.NoError(t, s.AppendHistory(types.DomainPricing, entry(now, `{"categories":[{"id":"ide"}]}`), window, now))

	entries, err := s.History(types.DomainPricing)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	latest, err := s.Latest(types.DomainPricing)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.JSONEq(t, `{"categories":[{"id":"ide"}]}`, string(latest.Data))

	// On-disk layout is one readable JSON array per domain.
	buf, err := os.ReadFile(filepath.Join(dir, "pricing-history.json"))
	require.NoError(t, err)
	var onDisk []types.HistoryEntry
	require.NoError(t, json.Unmarshal(buf, &onDisk))
	assert.Len(t, onDisk, 2)
}

func TestFileSnapshotStoreTrimsOnAppend(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileSnapshotStore(dir)
	require.NoError(t, err)
	window := 7 * 24 * time.Hour

	require.NoError(t, s.AppendHistory(types.DomainNews, entry(now.AddDate(0, 0, -10), `{}`), window, now))
	require.NoError(t, s.AppendHistory(types.DomainNews, entry(now, `{}`), window, now))

	entries, err := s.History(types.DomainNews)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, now, entries[0].Timestamp)
}

func TestFileSnapshotStoreMissingFileIsEmpty(t *testing.T) {
	s, err := NewFileSnapshotStore(t.TempDir())
	require.NoError(t, err)

	entries, err := s.History(types.DomainSocial)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileAlertStoreRewritesWholeLog(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileAlertStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Append(alert("a1", now.AddDate(0, 0, -1))))
	require.NoError(t, s.Append(alert("a2", now)))

	recent, err := s.Recent(7, now)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "a2", recent[0].ID)

	buf, err := os.ReadFile(filepath.Join(dir, "competitive-alerts.json"))
	require.NoError(t, err)
	var onDisk []types.CompetitiveAlert
	require.NoError(t, json.Unmarshal(buf, &onDisk))
	require.Len(t, onDisk, 2)
	assert.Equal(t, "a1", onDisk[0].ID, "log keeps insertion order on disk")
}

func TestFileAlertStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileAlertStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Append(alert("a1", now)))

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "competitive-alerts.json", files[0].Name())
}
