package types

import "time"

// CompetitorProfile is the merged view of one competitor across the latest
// pricing and feature snapshots.
type CompetitorProfile struct {
	Name        string          `json:"name"`
	Website     string          `json:"website,omitempty"`
	Features    map[string]bool `json:"features,omitempty"`
	Pricing     *PricingPlan    `json:"pricing,omitempty"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// HasFeature reports whether the profile is known to ship the feature.
// An absent feature matrix means unknown, which reads as false.
func (p *CompetitorProfile) HasFeature(feature string) bool {
	if p == nil {
		return false
	}
	return p.Features[feature]
}

// PricingPlan is a competitor's tier lineup.
type PricingPlan struct {
	FreeTier   bool         `json:"freeTier"`
	Individual *PricingTier `json:"individual,omitempty"`
	Team       *PricingTier `json:"team,omitempty"`
	Enterprise *PricingTier `json:"enterprise,omitempty"`
}

// PricingTier is one plan tier. A tier can be note-only ("contact us"),
// which carries no usable price.
type PricingTier struct {
	Price  float64 `json:"price,omitempty"`
	Period string  `json:"period,omitempty"`
	Note   string  `json:"note,omitempty"`
}

// Priced reports whether the tier has a concrete positive price.
func (t *PricingTier) Priced() bool {
	return t != nil && t.Price > 0
}
