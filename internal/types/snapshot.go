package types

import (
	"encoding/json"
	"time"
)

// Domain names one tracked slice of the competitive landscape. Pricing and
// features carry structured snapshots; the rest are flat key/value documents.
type Domain string

const (
	DomainPricing  Domain = "pricing"
	DomainFeatures Domain = "features"
	DomainJobs     Domain = "jobs"
	DomainSocial   Domain = "social"
	DomainFunding  Domain = "funding"
	DomainNews     Domain = "news"
)

// HistoryEntry is one archived raw document. Data keeps the source bytes
// verbatim so a later parser revision can reinterpret old history.
type HistoryEntry struct {
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// ToolPricing is one tool's parsed pricing row.
type ToolPricing struct {
	Name       string       `json:"name"`
	Website    string       `json:"website,omitempty"`
	FreeTier   bool         `json:"freeTier"`
	Individual *PricingTier `json:"individual,omitempty"`
	Team       *PricingTier `json:"team,omitempty"`
	Enterprise *PricingTier `json:"enterprise,omitempty"`
}

// PricingSnapshot is the parsed pricing document, keyed by tool name.
type PricingSnapshot struct {
	Tools map[string]ToolPricing `json:"tools"`
}

// FeatureSnapshot is the parsed feature matrix: competitor -> feature -> has.
type FeatureSnapshot struct {
	LastUpdated time.Time                  `json:"lastUpdated,omitempty"`
	Competitors map[string]map[string]bool `json:"competitors"`
}

// GenericSnapshot is a flat document for the loosely shaped domains (jobs,
// social, funding, news), keyed "Competitor.field".
type GenericSnapshot map[string]string
