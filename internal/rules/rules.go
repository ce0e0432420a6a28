package rules

import "strings"

// Rules is the static policy data the classifier and scorer consult.
// Values come from the compiled-in defaults unless a rules file overrides them.
type Rules struct {
	// HighPriorityFeatures escalate a feature alert to high severity when added.
	HighPriorityFeatures []string `mapstructure:"high_priority_features" yaml:"high_priority_features"`
	// CriticalFeatures are the (at most four) features scored in threat ranking.
	CriticalFeatures []string `mapstructure:"critical_features" yaml:"critical_features"`
	// MarketLeaders receive the flat market-presence bonus.
	MarketLeaders []string `mapstructure:"market_leaders" yaml:"market_leaders"`
	// StrategicReads map change patterns to canned interpretations.
	StrategicReads map[string]string `mapstructure:"strategic_reads" yaml:"strategic_reads"`
}

// Pattern keys for StrategicReads.
const (
	ReadPriceUpMajor    = "price_up_major"
	ReadPriceUpModerate = "price_up_moderate"
	ReadPriceDownMajor  = "price_down_major"
	ReadPriceDownMinor  = "price_down_minor"
	ReadTeamPriceUp     = "team_price_up"
	ReadFeatureCritical = "feature_critical"
	ReadFeatureBurst    = "feature_burst"
	ReadFeatureRemoved  = "feature_removed"
)

// Default returns the built-in rule set.
func Default() Rules {
	return Rules{
		HighPriorityFeatures: []string{
			"Agentic coding",
			"Multi-file edits",
			"Codebase context",
			"Background agents",
		},
		CriticalFeatures: []string{
			"Agentic coding",
			"Multi-file edits",
			"Codebase context",
			"Terminal integration",
		},
		MarketLeaders: []string{
			"Cursor",
			"GitHub Copilot",
			"Windsurf",
		},
		StrategicReads: map[string]string{
			ReadPriceUpMajor:    "Monetization pressure or value confidence",
			ReadPriceUpModerate: "Testing price elasticity upmarket",
			ReadPriceDownMajor:  "Market share grab",
			ReadPriceDownMinor:  "Competitive pressure on pricing",
			ReadTeamPriceUp:     "Enterprise focus shift",
			ReadFeatureCritical: "Closing the agentic capability gap",
			ReadFeatureBurst:    "Accelerated shipping cadence",
			ReadFeatureRemoved:  "Product simplification or repositioning",
		},
	}
}

// IsHighPriority reports whether the feature belongs to the escalation set.
func (r Rules) IsHighPriority(feature string) bool {
	return containsFold(r.HighPriorityFeatures, feature)
}

// IsLeader reports whether the competitor is on the market-leaders list.
func (r Rules) IsLeader(name string) bool {
	return containsFold(r.MarketLeaders, name)
}

// Read returns the canned interpretation for a pattern key, or "".
func (r Rules) Read(pattern string) string {
	return r.StrategicReads[pattern]
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(strings.TrimSpace(item), strings.TrimSpace(s)) {
			return true
		}
	}
	return false
}

// merge fills empty fields of an override from the defaults, so a rules file
// may override only the sections it cares about.
func merge(base, override Rules) Rules {
	out := base
	if len(override.HighPriorityFeatures) > 0 {
		out.HighPriorityFeatures = override.HighPriorityFeatures
	}
	if len(override.CriticalFeatures) > 0 {
		out.CriticalFeatures = override.CriticalFeatures
	}
	if len(override.MarketLeaders) > 0 {
		out.MarketLeaders = override.MarketLeaders
	}
	if len(override.StrategicReads) > 0 {
		merged := make(map[string]string, len(base.StrategicReads))
		for k, v := range base.StrategicReads {
			merged[k] = v
		}
		for k, v := range override.StrategicReads {
			merged[k] = v
		}
		out.StrategicReads = merged
	}
	return out
}
