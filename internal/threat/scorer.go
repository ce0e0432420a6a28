package threat

import "rivalwatch/internal/types"

// Fixed bucket weights. Feature completeness caps at 40 (4 features x 10),
// pricing competitiveness at 30, market presence at 30.
const (
	featureWeight       = 10
	maxCriticalFeatures = 4
	freeTierWeight      = 10
	cheapIndividual     = 20.0
	individualWeight    = 10
	teamTierWeight      = 10
	leaderBonus         = 30
	maxScore            = 100
)

// Score ranks a competitor's overall strength on [0,100]. Pure: identical
// inputs always yield the identical score. A nil profile (unknown
// competitor) scores 0, never an error.
func Score(profile *types.CompetitorProfile, leaders, critical []string) int {
	if profile == nil {
		return 0
	}
	score := featureScore(profile, critical) + pricingScore(profile.Pricing)
	if isLeader(profile.Name, leaders) {
		score += leaderBonus
	}
	if score > maxScore {
		score = maxScore
	}
	if score < 0 {
		score = 0
	}
	return score
}

func featureScore(profile *types.CompetitorProfile, critical []string) int {
	score := 0
	counted := 0
	for _, feature := range critical {
		if counted == maxCriticalFeatures {
			break
		}
		counted++
		if profile.HasFeature(feature) {
			score += featureWeight
		}
	}
	return score
}

func pricingScore(plan *types.PricingPlan) int {
	if plan == nil {
		return 0
	}
	score := 0
	if plan.FreeTier {
		score += freeTierWeight
	}
	if plan.Individual.Priced() && plan.Individual.Price < cheapIndividual {
		score += individualWeight
	}
	if plan.Team != nil {
		score += teamTierWeight
	}
	return score
}

func isLeader(name string, leaders []string) bool {
	for _, leader := range leaders {
		if leader == name {
			return true
		}
	}
	return false
}
