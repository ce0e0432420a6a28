package diff

import (
	"sort"

	"rivalwatch/internal/types"
)

// Features compares two feature matrices. A feature is added when it was
// absent or false before and is true now, removed when it was true before and
// is absent or false now. Unchanged values, true or not, produce nothing.
func Features(prev, curr types.FeatureSnapshot) []types.Change {
	var changes []types.Change
	for _, competitor := range sortedKeys(curr.Competitors) {
		before := prev.Competitors[competitor]
		after := curr.Competitors[competitor]
		for _, feature := range sortedFeatures(before, after) {
			had := before[feature]
			has := after[feature]
			switch {
			case has && !had:
				changes = append(changes, featureChange(competitor, feature, types.ChangeFeatureAdded))
			case had && !has:
				changes = append(changes, featureChange(competitor, feature, types.ChangeFeatureRemoved))
			}
		}
	}
	return changes
}

func featureChange(competitor, feature string, kind types.ChangeKind) types.Change {
	c := types.Change{
		Competitor: competitor,
		Domain:     types.DomainFeatures,
		Kind:       kind,
		Field:      feature,
	}
	if kind == types.ChangeFeatureAdded {
		c.New = "true"
	} else {
		c.Old = "true"
	}
	return c
}

func sortedKeys(m map[string]map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedFeatures(before, after map[string]bool) []string {
	seen := make(map[string]bool, len(before)+len(after))
	var features []string
	for f := range before {
		if !seen[f] {
			seen[f] = true
			features = append(features, f)
		}
	}
	for f := range after {
		if !seen[f] {
			seen[f] = true
			features = append(features, f)
		}
	}
	sort.Strings(features)
	return features
}
