package types

import (
	"strings"
	"time"
)

// AlertType categorizes what dimension of the competitive landscape moved.
type AlertType string

const (
	AlertPricing     AlertType = "pricing"
	AlertFeature     AlertType = "feature"
	AlertPositioning AlertType = "positioning"
	AlertThreat      AlertType = "threat"
	AlertOpportunity AlertType = "opportunity"
)

// Severity is the ordinal market-importance classification of an alert.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var severityRank = map[Severity]int{
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// Rank returns the ordinal position of s; unknown severities rank 0,
// below low.
func (s Severity) Rank() int {
	return severityRank[s]
}

// AtLeast reports whether s is at or above min on the severity ladder.
func (s Severity) AtLeast(min Severity) bool {
	return s.Rank() >= min.Rank()
}

// ParseSeverity normalizes a configured severity string. Anything it does
// not recognize maps to low.
func ParseSeverity(s string) Severity {
	switch Severity(strings.ToLower(strings.TrimSpace(s))) {
	case SeverityCritical:
		return SeverityCritical
	case SeverityHigh:
		return SeverityHigh
	case SeverityMedium:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// CompetitiveAlert is one classified market event. Alerts are immutable once
// appended to the log.
type CompetitiveAlert struct {
	ID              string    `json:"id"`
	Date            time.Time `json:"date"`
	Competitor      string    `json:"competitor"`
	Type            AlertType `json:"type"`
	Severity        Severity  `json:"severity"`
	Title           string    `json:"title"`
	Summary         string    `json:"summary"`
	StrategicRead   string    `json:"strategicRead,omitempty"`
	UserImpact      string    `json:"userImpact,omitempty"`
	Recommendations []string  `json:"recommendations,omitempty"`
}
