package diff

import (
	"fmt"
	"sort"

	"rivalwatch/internal/types"

	"github.com/shopspring/decimal"
)

// Pricing compares two pricing snapshots and reports per-tool tier changes.
// Individual and team tiers are compared independently. A tool with no
// previous counterpart produces nothing: first sightings have no baseline.
// Inputs are never mutated.
func Pricing(prev, curr types.PricingSnapshot) []types.Change {
	var changes []types.Change
	for _, name := range sortedToolNames(curr.Tools) {
		before, ok := prev.Tools[name]
		if !ok {
			continue
		}
		after := curr.Tools[name]
		if c := tierChange(name, "individual", before.Individual, after.Individual); c != nil {
			changes = append(changes, *c)
		}
		if c := tierChange(name, "team", before.Team, after.Team); c != nil {
			changes = append(changes, *c)
		}
	}
	return changes
}

func tierChange(competitor, tier string, before, after *types.PricingTier) *types.Change {
	oldPrice := tierPrice(before)
	newPrice := tierPrice(after)
	if decimal.NewFromFloat(oldPrice).Equal(decimal.NewFromFloat(newPrice)) {
		return nil
	}
	c := &types.Change{
		Competitor: competitor,
		Domain:     types.DomainPricing,
		Kind:       types.ChangePrice,
		Field:      tier,
		Old:        FormatPrice(oldPrice),
		New:        FormatPrice(newPrice),
		OldPrice:   oldPrice,
		NewPrice:   newPrice,
		Percent:    percentChange(oldPrice, newPrice),
	}
	return c
}

// tierPrice treats a missing or non-numeric tier as 0 for comparison math;
// the raw values still reach the output through Old/New.
func tierPrice(t *types.PricingTier) float64 {
	if t == nil {
		return 0
	}
	return t.Price
}

// percentChange returns (new-old)/old*100, or nil when old is 0: a zero
// baseline means a new tier, not an infinite increase.
func percentChange(oldPrice, newPrice float64) *float64 {
	oldDec := decimal.NewFromFloat(oldPrice)
	if oldDec.IsZero() {
		return nil
	}
	pct, _ := decimal.NewFromFloat(newPrice).
		Sub(oldDec).
		Div(oldDec).
		Mul(decimal.NewFromInt(100)).
		Float64()
	return &pct
}

// FormatPrice renders a price the way alert summaries show it: "$20" for
// whole dollars, "$19.99" otherwise.
func FormatPrice(price float64) string {
	d := decimal.NewFromFloat(price)
	if d.Equal(d.Truncate(0)) {
		return fmt.Sprintf("$%s", d.Truncate(0).String())
	}
	return fmt.Sprintf("$%s", d.StringFixed(2))
}

func sortedToolNames(tools map[string]types.ToolPricing) []string {
	names := make([]string, 0, len(tools))
	for name := range tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
