package classify

import (
	"fmt"
	"testing"
	"time"

	"rivalwatch/internal/rules"
	"rivalwatch/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func newTestClassifier() *Classifier {
	return New(rules.Default())
}

func priceChange(field string, oldPrice, newPrice float64, pct *float64) types.Change {
	return types.Change{
		Competitor: "Cursor",
		Domain:     types.DomainPricing,
		Kind:       types.ChangePrice,
		Field:      field,
		Old:        fmt.Sprintf("$%g", oldPrice),
		New:        fmt.Sprintf("$%g", newPrice),
		OldPrice:   oldPrice,
		NewPrice:   newPrice,
		Percent:    pct,
	}
}

func pctPtr(v float64) *float64 { return &v }

func TestClassifyEmptyChangesReturnsNil(t *testing.T) {
	c := newTestClassifier()
	assert.Nil(t, c.Classify("Cursor", types.DomainPricing, nil, testNow))
	assert.Nil(t, c.Classify("Cursor", types.DomainFeatures, []types.Change{}, testNow))
}

func TestClassifyFiftyPercentIncreaseIsHigh(t *testing.T) {
	c := newTestClassifier()
	alert := c.Classify("Cursor", types.DomainPricing,
		[]types.Change{priceChange("individual", 20, 30, pctPtr(50))}, testNow)

	require.NotNil(t, alert)
	assert.Equal(t, types.AlertPricing, alert.Type)
	assert.Equal(t, types.SeverityHigh, alert.Severity)
	assert.Contains(t, alert.Summary, "$20 → $30")
	assert.Equal(t, "Monetization pressure or value confidence", alert.StrategicRead)
	assert.NotEmpty(t, alert.ID)
	assert.Equal(t, testNow, alert.Date)
	assert.NotEmpty(t, alert.Recommendations)
}

func TestClassifyModeratePriceChangeIsMedium(t *testing.T) {
	c := newTestClassifier()
	alert := c.Classify("Cursor", types.DomainPricing,
		[]types.Change{priceChange("individual", 20, 25, pctPtr(25))}, testNow)

	require.NotNil(t, alert)
	assert.Equal(t, types.SeverityMedium, alert.Severity)
}

func TestClassifySmallPriceChangeIsLow(t *testing.T) {
	c := newTestClassifier()
	alert := c.Classify("Cursor", types.DomainPricing,
		[]types.Change{priceChange("individual", 20, 22, pctPtr(10))}, testNow)

	require.NotNil(t, alert)
	assert.Equal(t, types.SeverityLow, alert.Severity)
}

func TestClassifyZeroBaselineIsLow(t *testing.T) {
	c := newTestClassifier()
	alert := c.Classify("Cursor", types.DomainPricing,
		[]types.Change{priceChange("individual", 0, 15, nil)}, testNow)

	require.NotNil(t, alert)
	assert.Equal(t, types.SeverityLow, alert.Severity)
}

func TestClassifyTeamOnlyIncreaseAttachesEnterpriseRead(t *testing.T) {
	c := newTestClassifier()
	alert := c.Classify("Cursor", types.DomainPricing,
		[]types.Change{priceChange("team", 40, 44, pctPtr(10))}, testNow)

	require.NotNil(t, alert)
	assert.Equal(t, types.SeverityLow, alert.Severity)
	assert.Equal(t, "Enterprise focus shift", alert.StrategicRead)
}

func TestClassifyHighPriorityFeatureIsHigh(t *testing.T) {
	c := newTestClassifier()
	changes := []types.Change{
		{Competitor: "Cursor", Domain: types.DomainFeatures, Kind: types.ChangeFeatureAdded, Field: "Agentic coding"},
	}
	alert := c.Classify("Cursor", types.DomainFeatures, changes, testNow)

	require.NotNil(t, alert)
	assert.Equal(t, types.AlertFeature, alert.Type)
	assert.Equal(t, types.SeverityHigh, alert.Severity)
	assert.Contains(t, alert.Summary, "Added: Agentic coding")
}

func TestClassifyFeatureBurstIsMedium(t *testing.T) {
	c := newTestClassifier()
	var changes []types.Change
	for _, f := range []string{"Themes", "Snippets", "Shortcuts", "Keymaps"} {
		changes = append(changes, types.Change{
			Competitor: "Cursor", Domain: types.DomainFeatures,
			Kind: types.ChangeFeatureAdded, Field: f,
		})
	}
	alert := c.Classify("Cursor", types.DomainFeatures, changes, testNow)

	require.NotNil(t, alert)
	assert.Equal(t, types.SeverityMedium, alert.Severity)
	assert.Equal(t, "Accelerated shipping cadence", alert.StrategicRead)
}

func TestClassifyFewOrdinaryFeaturesIsLow(t *testing.T) {
	c := newTestClassifier()
	changes := []types.Change{
		{Competitor: "Cursor", Domain: types.DomainFeatures, Kind: types.ChangeFeatureAdded, Field: "Themes"},
	}
	alert := c.Classify("Cursor", types.DomainFeatures, changes, testNow)

	require.NotNil(t, alert)
	assert.Equal(t, types.SeverityLow, alert.Severity)
}

func TestClassifyGenericDomainIsPositioning(t *testing.T) {
	c := newTestClassifier()
	changes := []types.Change{
		{Competitor: "Cursor", Domain: types.DomainJobs, Kind: types.ChangeField, Field: "openings", Old: "10", New: "25"},
	}
	alert := c.Classify("Cursor", types.DomainJobs, changes, testNow)

	require.NotNil(t, alert)
	assert.Equal(t, types.AlertPositioning, alert.Type)
	assert.Equal(t, types.SeverityLow, alert.Severity)
	assert.Contains(t, alert.Summary, "openings: 10 → 25")
}

func TestClassifyDeterministicApartFromID(t *testing.T) {
	c := newTestClassifier()
	changes := []types.Change{priceChange("individual", 20, 30, pctPtr(50))}

	a := c.Classify("Cursor", types.DomainPricing, changes, testNow)
	b := c.Classify("Cursor", types.DomainPricing, changes, testNow)
	require.NotNil(t, a)
	require.NotNil(t, b)

	assert.NotEqual(t, a.ID, b.ID, "ids must be unique within the same tick")
	a.ID, b.ID = "", ""
	assert.Equal(t, a, b)
}
