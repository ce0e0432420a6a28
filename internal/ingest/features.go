package ingest

import (
	"strings"
	"time"

	"rivalwatch/internal/types"

	"github.com/tidwall/gjson"
)

// ParseFeatures turns a raw feature-matrix.json document into a
// FeatureSnapshot. Only boolean feature values survive; the schema rejects
// anything else up front.
func ParseFeatures(raw []byte) (types.FeatureSnapshot, error) {
	snap := types.FeatureSnapshot{Competitors: map[string]map[string]bool{}}
	if err := validateAgainst(featureCompiled, raw); err != nil {
		return snap, err
	}
	doc := gjson.ParseBytes(raw)
	if ts := doc.Get("lastUpdated").String(); ts != "" {
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			snap.LastUpdated = parsed
		}
	}
	doc.Get("competitors").ForEach(func(name, features gjson.Result) bool {
		competitor := strings.TrimSpace(name.String())
		if competitor == "" {
			return true
		}
		row := map[string]bool{}
		features.ForEach(func(feature, present gjson.Result) bool {
			key := strings.TrimSpace(feature.String())
			if key != "" {
				row[key] = present.Bool()
			}
			return true
		})
		snap.Competitors[competitor] = row
		return true
	})
	return snap, nil
}
