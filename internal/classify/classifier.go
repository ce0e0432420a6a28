package classify

import (
	"fmt"
	"math"
	"strings"
	"time"

	"rivalwatch/internal/rules"
	"rivalwatch/internal/types"

	"github.com/google/uuid"
)

// Classifier turns a per-competitor change set into at most one alert.
// It is policy only: persistence belongs to the collector.
type Classifier struct {
	rules rules.Rules
	newID func() string
}

func New(r rules.Rules) *Classifier {
	return &Classifier{rules: r, newID: uuid.NewString}
}

// Classify returns nil when changes is empty: the explicit no-alert path,
// distinguishable from an error. Every field except ID is deterministic for
// identical inputs.
func (c *Classifier) Classify(competitor string, domain types.Domain, changes []types.Change, now time.Time) *types.CompetitiveAlert {
	if len(changes) == 0 {
		return nil
	}
	switch domain {
	case types.DomainPricing:
		return c.classifyPricing(competitor, changes, now)
	case types.DomainFeatures:
		return c.classifyFeatures(competitor, changes, now)
	default:
		return c.classifyGeneric(competitor, domain, changes, now)
	}
}

func (c *Classifier) classifyPricing(competitor string, changes []types.Change, now time.Time) *types.CompetitiveAlert {
	var individual, team *types.Change
	for i := range changes {
		switch changes[i].Field {
		case "individual":
			individual = &changes[i]
		case "team":
			team = &changes[i]
		}
	}

	severity := types.SeverityLow
	var read string
	switch {
	case individual != nil:
		severity = severityFromPercent(individual.Percent)
		read = c.pricingRead(individual)
	case team != nil:
		severity = severityFromPercent(team.Percent)
		if team.NewPrice > team.OldPrice {
			read = c.rules.Read(rules.ReadTeamPriceUp)
		}
	}

	summary := pricingSummary(changes)
	alert := &types.CompetitiveAlert{
		ID:            c.newID(),
		Date:          now,
		Competitor:    competitor,
		Type:          types.AlertPricing,
		Severity:      severity,
		Title:         fmt.Sprintf("%s pricing change", competitor),
		Summary:       summary,
		StrategicRead: read,
	}
	if individual != nil {
		alert.UserImpact = fmt.Sprintf("Individual plan moves from %s to %s", individual.Old, individual.New)
	}
	if severity.AtLeast(types.SeverityHigh) {
		alert.Recommendations = []string{
			fmt.Sprintf("Re-check price positioning against %s", competitor),
			"Flag the change for the next pricing review",
		}
	}
	return alert
}

func (c *Classifier) pricingRead(change *types.Change) string {
	if change.Percent == nil {
		return ""
	}
	pct := *change.Percent
	switch {
	case pct >= 50:
		return c.rules.Read(rules.ReadPriceUpMajor)
	case pct >= 20:
		return c.rules.Read(rules.ReadPriceUpModerate)
	case pct <= -50:
		return c.rules.Read(rules.ReadPriceDownMajor)
	case pct < 0:
		return c.rules.Read(rules.ReadPriceDownMinor)
	default:
		return ""
	}
}

func (c *Classifier) classifyFeatures(competitor string, changes []types.Change, now time.Time) *types.CompetitiveAlert {
	var added, removed []string
	highPriority := false
	for _, ch := range changes {
		switch ch.Kind {
		case types.ChangeFeatureAdded:
			added = append(added, ch.Field)
			if c.rules.IsHighPriority(ch.Field) {
				highPriority = true
			}
		case types.ChangeFeatureRemoved:
			removed = append(removed, ch.Field)
		}
	}

	severity := types.SeverityLow
	var read string
	switch {
	case highPriority:
		severity = types.SeverityHigh
		read = c.rules.Read(rules.ReadFeatureCritical)
	case len(added) > 3:
		severity = types.SeverityMedium
		read = c.rules.Read(rules.ReadFeatureBurst)
	case len(added) == 0 && len(removed) > 0:
		read = c.rules.Read(rules.ReadFeatureRemoved)
	}

	var parts []string
	if len(added) > 0 {
		parts = append(parts, "Added: "+strings.Join(added, ", "))
	}
	if len(removed) > 0 {
		parts = append(parts, "Removed: "+strings.Join(removed, ", "))
	}

	alert := &types.CompetitiveAlert{
		ID:            c.newID(),
		Date:          now,
		Competitor:    competitor,
		Type:          types.AlertFeature,
		Severity:      severity,
		Title:         fmt.Sprintf("%s feature update", competitor),
		Summary:       strings.Join(parts, "; "),
		StrategicRead: read,
	}
	if severity.AtLeast(types.SeverityHigh) {
		alert.Recommendations = []string{
			"Assess the capability gap this opens",
			fmt.Sprintf("Track adoption signals for %s", competitor),
		}
	}
	return alert
}

func (c *Classifier) classifyGeneric(competitor string, domain types.Domain, changes []types.Change, now time.Time) *types.CompetitiveAlert {
	parts := make([]string, 0, len(changes))
	for _, ch := range changes {
		parts = append(parts, fmt.Sprintf("%s: %s → %s", ch.Field, ch.Old, ch.New))
	}
	return &types.CompetitiveAlert{
		ID:         c.newID(),
		Date:       now,
		Competitor: competitor,
		Type:       types.AlertPositioning,
		Severity:   types.SeverityLow,
		Title:      fmt.Sprintf("%s %s update", competitor, domain),
		Summary:    strings.Join(parts, "; "),
	}
}

// severityFromPercent applies the magnitude thresholds: |pct| >= 50 is high,
// >= 20 medium, anything else (including a nil zero-baseline change) low.
func severityFromPercent(pct *float64) types.Severity {
	if pct == nil {
		return types.SeverityLow
	}
	abs := math.Abs(*pct)
	switch {
	case abs >= 50:
		return types.SeverityHigh
	case abs >= 20:
		return types.SeverityMedium
	default:
		return types.SeverityLow
	}
}

func pricingSummary(changes []types.Change) string {
	parts := make([]string, 0, len(changes))
	for _, ch := range changes {
		s := fmt.Sprintf("%s: %s → %s", ch.Field, ch.Old, ch.New)
		if ch.Percent != nil {
			s += fmt.Sprintf(" (%+.1f%%)", *ch.Percent)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "; ")
}
