package collector

import (
	"encoding/json"

	"rivalwatch/internal/diff"
	"rivalwatch/internal/ingest"
	"rivalwatch/internal/logger"
	"rivalwatch/internal/types"
)

// loadAndDiff reads the source's current document, parses it for the domain
// and diffs it against the latest history entry (or the synthetic empty
// snapshot when history is empty). The raw document is returned for history.
func (c *Collector) loadAndDiff(src Source) (json.RawMessage, []types.Change, error) {
	raw, err := ingest.ReadDocument(src.Path)
	if err != nil {
		return nil, nil, err
	}
	prev, err := c.snapshots.Latest(src.Domain)
	if err != nil {
		return nil, nil, err
	}
	var prevData json.RawMessage
	if prev != nil {
		prevData = prev.Data
	}

	switch src.Domain {
	case types.DomainPricing:
		return diffPricing(src, prevData, raw)
	case types.DomainFeatures:
		return diffFeatures(src, prevData, raw)
	default:
		return diffGeneric(src, prevData, raw)
	}
}

func diffPricing(src Source, prevData, raw json.RawMessage) (json.RawMessage, []types.Change, error) {
	curr, err := ingest.ParsePricing(raw)
	if err != nil {
		return nil, nil, err
	}
	var prev types.PricingSnapshot
	if len(prevData) > 0 {
		if prev, err = ingest.ParsePricing(prevData); err != nil {
			// A bad history entry must not block fresh data; diff against empty.
			logger.Warnf("source %s: stored snapshot unreadable, treating as empty: %v", src.Name, err)
			prev = types.PricingSnapshot{Tools: map[string]types.ToolPricing{}}
		}
	}
	return raw, diff.Pricing(prev, curr), nil
}

func diffFeatures(src Source, prevData, raw json.RawMessage) (json.RawMessage, []types.Change, error) {
	curr, err := ingest.ParseFeatures(raw)
	if err != nil {
		return nil, nil, err
	}
	var prev types.FeatureSnapshot
	if len(prevData) > 0 {
		if prev, err = ingest.ParseFeatures(prevData); err != nil {
			logger.Warnf("source %s: stored snapshot unreadable, treating as empty: %v", src.Name, err)
			prev = types.FeatureSnapshot{Competitors: map[string]map[string]bool{}}
		}
	}
	return raw, diff.Features(prev, curr), nil
}

func diffGeneric(src Source, prevData, raw json.RawMessage) (json.RawMessage, []types.Change, error) {
	curr, err := ingest.ParseGeneric(raw)
	if err != nil {
		return nil, nil, err
	}
	prev := types.GenericSnapshot{}
	if len(prevData) > 0 {
		if prev, err = ingest.ParseGeneric(prevData); err != nil {
			logger.Warnf("source %s: stored snapshot unreadable, treating as empty: %v", src.Name, err)
			prev = types.GenericSnapshot{}
		}
	}
	return raw, diff.Generic(prev, curr, src.Domain), nil
}
