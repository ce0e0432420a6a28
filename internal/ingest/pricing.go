package ingest

import (
	"strings"

	"rivalwatch/internal/types"

	"github.com/tidwall/gjson"
)

// ParsePricing turns a raw pricing.json document into a PricingSnapshot.
// Tier values tolerate both object form ({price, period}) and string form
// ("custom", "contact us"); free tier tolerates bool and string forms.
func ParsePricing(raw []byte) (types.PricingSnapshot, error) {
	snap := types.PricingSnapshot{Tools: map[string]types.ToolPricing{}}
	if err := validateAgainst(pricingCompiled, raw); err != nil {
		return snap, err
	}
	doc := gjson.ParseBytes(raw)
	doc.Get("categories").ForEach(func(_, cat gjson.Result) bool {
		cat.Get("tools").ForEach(func(_, tool gjson.Result) bool {
			name := strings.TrimSpace(tool.Get("name").String())
			if name == "" {
				return true
			}
			snap.Tools[name] = types.ToolPricing{
				Name:       name,
				Website:    strings.TrimSpace(tool.Get("website").String()),
				FreeTier:   parseFreeTier(tool.Get("freeTier")),
				Individual: parseTier(tool.Get("individual")),
				Team:       parseTier(tool.Get("team")),
				Enterprise: parseTier(tool.Get("enterprise")),
			}
			return true
		})
		return true
	})
	return snap, nil
}

func parseTier(r gjson.Result) *types.PricingTier {
	switch {
	case r.IsObject():
		tier := &types.PricingTier{
			Price:  r.Get("price").Float(),
			Period: strings.TrimSpace(r.Get("period").String()),
			Note:   strings.TrimSpace(r.Get("note").String()),
		}
		if tier.Price == 0 && tier.Period == "" && tier.Note == "" {
			return nil
		}
		return tier
	case r.Type == gjson.String:
		note := strings.TrimSpace(r.String())
		if note == "" {
			return nil
		}
		return &types.PricingTier{Note: note}
	case r.Type == gjson.Number:
		return &types.PricingTier{Price: r.Float()}
	default:
		return nil
	}
}

func parseFreeTier(r gjson.Result) bool {
	switch r.Type {
	case gjson.True:
		return true
	case gjson.String:
		switch strings.ToLower(strings.TrimSpace(r.String())) {
		case "", "no", "false", "none":
			return false
		default:
			return true
		}
	default:
		return false
	}
}
