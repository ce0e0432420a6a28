package diff

import (
	"sort"
	"strings"

	"rivalwatch/internal/types"
)

// Generic compares two flat snapshots of a loosely shaped domain. Keys are
// competitor-qualified ("Cursor.github_stars"); a changed value becomes one
// field_changed entry. Keys present on only one side are skipped: like
// pricing tools, a field needs a baseline before it can change.
func Generic(prev, curr types.GenericSnapshot, domain types.Domain) []types.Change {
	var changes []types.Change
	keys := make([]string, 0, len(curr))
	for k := range curr {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		before, ok := prev[key]
		if !ok {
			continue
		}
		after := curr[key]
		if before == after {
			continue
		}
		changes = append(changes, types.Change{
			Competitor: competitorOf(key),
			Domain:     domain,
			Kind:       types.ChangeField,
			Field:      fieldOf(key),
			Old:        before,
			New:        after,
		})
	}
	return changes
}

func competitorOf(key string) string {
	if i := strings.Index(key, "."); i > 0 {
		return key[:i]
	}
	return key
}

func fieldOf(key string) string {
	if i := strings.Index(key, "."); i > 0 && i < len(key)-1 {
		return key[i+1:]
	}
	return key
}
