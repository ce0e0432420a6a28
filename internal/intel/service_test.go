package intel

import (
	"encoding/json"
	"testing"
	"time"

	"rivalwatch/internal/rules"
	"rivalwatch/internal/store"
	"rivalwatch/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

const storedPricing = `{"categories":[{"id":"ide","tools":[
  {"name":"Cursor","website":"https://cursor.com","freeTier":true,"individual":{"price":16,"period":"month"},"team":{"price":32,"period":"month"}},
  {"name":"Aider","freeTier":true}
]}]}`

const storedFeatures = `{"competitors":{
  "Cursor":{"Agentic coding":true,"Multi-file edits":true,"Codebase context":true,"Terminal integration":true},
  "Aider":{"Agentic coding":true},
  "Tabnine":{"Agentic coding":false}
}}`

func newTestService(t *testing.T) (*Service, *store.MemoryAlertStore) {
	t.Helper()
	snapshots := store.NewMemorySnapshotStore()
	alerts := store.NewMemoryAlertStore()
	registry, err := rules.NewRegistry("")
	require.NoError(t, err)

	window := 30 * 24 * time.Hour
	require.NoError(t, snapshots.AppendHistory(types.DomainPricing,
		types.HistoryEntry{Timestamp: testNow.Add(-time.Hour), Data: json.RawMessage(storedPricing)}, window, testNow))
	require.NoError(t, snapshots.AppendHistory(types.DomainFeatures,
		types.HistoryEntry{Timestamp: testNow, Data: json.RawMessage(storedFeatures)}, window, testNow))

	svc := NewService(snapshots, alerts, registry, func() time.Time { return testNow })
	require.NoError(t, svc.Refresh())
	return svc, alerts
}

func TestRefreshMergesDomainsByName(t *testing.T) {
	svc, _ := newTestService(t)

	all := svc.AllCompetitors()
	require.Len(t, all, 3)
	assert.Equal(t, []string{"Aider", "Cursor", "Tabnine"},
		[]string{all[0].Name, all[1].Name, all[2].Name})

	cursor := svc.Competitor("Cursor")
	require.NotNil(t, cursor)
	assert.Equal(t, "https://cursor.com", cursor.Website)
	require.NotNil(t, cursor.Pricing)
	assert.True(t, cursor.Pricing.FreeTier)
	assert.True(t, cursor.Features["Agentic coding"])
	assert.Equal(t, testNow, cursor.LastUpdated, "latest contributing snapshot wins")

	tabnine := svc.Competitor("Tabnine")
	require.NotNil(t, tabnine)
	assert.Nil(t, tabnine.Pricing, "absence stays absent, never false data")
}

func TestThreatScoreLeaderBeatsUnknown(t *testing.T) {
	svc, _ := newTestService(t)

	cursor := svc.ThreatScore("Cursor")
	unknown := svc.ThreatScore("RandomTool")
	assert.Equal(t, 0, unknown)
	assert.Greater(t, cursor, unknown)
	assert.Equal(t, 100, cursor, "leader with full coverage, free tier, cheap individual and team tier maxes out")
}

func TestThreatScoreIsStableAcrossCalls(t *testing.T) {
	svc, _ := newTestService(t)
	assert.Equal(t, svc.ThreatScore("Aider"), svc.ThreatScore("Aider"))
}

func TestRecentAlertsDelegatesWithRunClock(t *testing.T) {
	svc, alerts := newTestService(t)
	require.NoError(t, alerts.Append(types.CompetitiveAlert{ID: "a1", Date: testNow.AddDate(0, 0, -2)}))
	require.NoError(t, alerts.Append(types.CompetitiveAlert{ID: "a2", Date: testNow.AddDate(0, 0, -10)}))

	recent, err := svc.RecentAlerts(7)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "a1", recent[0].ID)
}

func TestIdentifyOpportunities(t *testing.T) {
	svc, _ := newTestService(t)

	opportunities := svc.IdentifyOpportunities()
	require.NotEmpty(t, opportunities)

	var featureGaps int
	for _, o := range opportunities {
		if o.Type == "feature_gap" {
			featureGaps++
			assert.NotContains(t, o.Competitors, "Cursor", "full-coverage competitor lacks nothing")
		}
	}
	// Aider and Tabnine both miss multi-file edits, codebase context and
	// terminal integration: three gaps shared by 2 of 3 trackable competitors.
	assert.Equal(t, 3, featureGaps)
}

func TestRefreshOnEmptyStoresYieldsEmptyRegistry(t *testing.T) {
	registry, err := rules.NewRegistry("")
	require.NoError(t, err)
	svc := NewService(store.NewMemorySnapshotStore(), store.NewMemoryAlertStore(), registry, nil)
	require.NoError(t, svc.Refresh())
	assert.Empty(t, svc.AllCompetitors())
	assert.Equal(t, 0, svc.ThreatScore("Cursor"), "leader with no profile still scores 0")
}
