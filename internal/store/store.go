package store

import (
	"sort"
	"time"

	"rivalwatch/internal/types"
)

// SnapshotStore owns per-domain history logs. Implementations trim on append:
// after AppendHistory every remaining entry satisfies Timestamp > now-window.
type SnapshotStore interface {
	History(domain types.Domain) ([]types.HistoryEntry, error)
	Latest(domain types.Domain) (*types.HistoryEntry, error)
	AppendHistory(domain types.Domain, entry types.HistoryEntry, window time.Duration, now time.Time) error
}

// AlertStore is the append-only alert log. Recent returns alerts with
// date > now-days, newest first, newest-inserted first on equal dates.
type AlertStore interface {
	Append(alerts ...types.CompetitiveAlert) error
	Recent(days int, now time.Time) ([]types.CompetitiveAlert, error)
}

// trimHistory drops entries at or older than the cutoff, preserving order.
func trimHistory(entries []types.HistoryEntry, window time.Duration, now time.Time) []types.HistoryEntry {
	cutoff := now.Add(-window)
	kept := entries[:0:0]
	for _, e := range entries {
		if e.Timestamp.After(cutoff) {
			kept = append(kept, e)
		}
	}
	return kept
}

// latestEntry picks the entry with the greatest timestamp. History files are
// appended chronologically, but a hand-edited file must not break "previous".
func latestEntry(entries []types.HistoryEntry) *types.HistoryEntry {
	var latest *types.HistoryEntry
	for i := range entries {
		if latest == nil || !entries[i].Timestamp.Before(latest.Timestamp) {
			latest = &entries[i]
		}
	}
	if latest == nil {
		return nil
	}
	cp := *latest
	return &cp
}

// recentAlerts filters and orders an insertion-ordered alert slice.
func recentAlerts(all []types.CompetitiveAlert, days int, now time.Time) []types.CompetitiveAlert {
	cutoff := now.AddDate(0, 0, -days)
	// Reverse first so that a stable sort leaves equal dates newest-inserted first.
	out := make([]types.CompetitiveAlert, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].Date.After(cutoff) {
			out = append(out, all[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
