package intel

import (
	"fmt"
	"sort"
	"strings"
)

// Opportunity is a rule-derived gap in the competitive field.
type Opportunity struct {
	Type        string   `json:"type"` // feature_gap | pricing_gap
	Description string   `json:"description"`
	Competitors []string `json:"competitors,omitempty"`
}

// IdentifyOpportunities scans the registry for exploitable gaps: critical
// features a majority of tracked competitors lack, and market leaders
// without a free tier. Deterministic given the same registry and rules.
func (s *Service) IdentifyOpportunities() []Opportunity {
	r := s.registry.Rules()
	profiles := s.AllCompetitors()
	var out []Opportunity

	for _, feature := range r.CriticalFeatures {
		var lacking []string
		known := 0
		for _, p := range profiles {
			if len(p.Features) == 0 {
				continue // feature coverage unknown, not absent
			}
			known++
			if !p.Features[feature] {
				lacking = append(lacking, p.Name)
			}
		}
		if known > 0 && len(lacking)*2 > known {
			sort.Strings(lacking)
			out = append(out, Opportunity{
				Type:        "feature_gap",
				Description: fmt.Sprintf("%q is missing from most of the field (%d of %d)", feature, len(lacking), known),
				Competitors: lacking,
			})
		}
	}

	var paidOnlyLeaders []string
	for _, p := range profiles {
		if p.Pricing == nil || !r.IsLeader(p.Name) {
			continue
		}
		if !p.Pricing.FreeTier {
			paidOnlyLeaders = append(paidOnlyLeaders, p.Name)
		}
	}
	if len(paidOnlyLeaders) > 0 {
		sort.Strings(paidOnlyLeaders)
		out = append(out, Opportunity{
			Type:        "pricing_gap",
			Description: "Market leaders without a free tier: " + strings.Join(paidOnlyLeaders, ", "),
			Competitors: paidOnlyLeaders,
		})
	}
	return out
}
