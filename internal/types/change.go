package types

import "time"

// ChangeKind names what kind of movement a diff detected.
type ChangeKind string

const (
	ChangePrice          ChangeKind = "price_changed"
	ChangeFeatureAdded   ChangeKind = "feature_added"
	ChangeFeatureRemoved ChangeKind = "feature_removed"
	ChangeField          ChangeKind = "field_changed"
)

// Change is one detected difference between consecutive snapshots.
// Old/New carry display strings; OldPrice/NewPrice/Percent are only set for
// price changes, and Percent is nil when the old price was 0 (a new tier has
// no meaningful percentage).
type Change struct {
	Competitor string     `json:"competitor"`
	Domain     Domain     `json:"domain"`
	Kind       ChangeKind `json:"kind"`
	Field      string     `json:"field"`
	Old        string     `json:"old,omitempty"`
	New        string     `json:"new,omitempty"`
	OldPrice   float64    `json:"oldPrice,omitempty"`
	NewPrice   float64    `json:"newPrice,omitempty"`
	Percent    *float64   `json:"percent,omitempty"`
}

// CollectionResult is the outcome of one source's pass within a batch.
type CollectionResult struct {
	Source    string    `json:"source"`
	Domain    Domain    `json:"domain"`
	Timestamp time.Time `json:"timestamp"`
	Changes   []Change  `json:"changes,omitempty"`
	Alerts    int       `json:"alerts"`
	Errors    []string  `json:"errors,omitempty"`
}

// BatchResult aggregates one collection run across all sources.
type BatchResult struct {
	StartedAt time.Time          `json:"startedAt"`
	Results   []CollectionResult `json:"results"`
}

// ErrorCount totals the error strings across all results.
func (b *BatchResult) ErrorCount() int {
	n := 0
	for _, r := range b.Results {
		n += len(r.Errors)
	}
	return n
}
