package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRulesAreComplete(t *testing.T) {
	r := Default()
	assert.NotEmpty(t, r.HighPriorityFeatures)
	assert.Len(t, r.CriticalFeatures, 4)
	assert.NotEmpty(t, r.MarketLeaders)
	for _, key := range []string{ReadPriceUpMajor, ReadPriceDownMajor, ReadTeamPriceUp, ReadFeatureCritical} {
		assert.NotEmpty(t, r.Read(key), "missing read for %s", key)
	}
}

func TestMatchingIsCaseInsensitive(t *testing.T) {
	r := Default()
	assert.True(t, r.IsHighPriority("agentic coding"))
	assert.True(t, r.IsLeader("cursor"))
	assert.False(t, r.IsLeader("RandomTool"))
}

func TestRegistryWithoutPathServesDefaults(t *testing.T) {
	reg, err := NewRegistry("")
	require.NoError(t, err)
	snap := reg.Snapshot()
	assert.Equal(t, Default(), snap.Rules)
	assert.Equal(t, int64(1), snap.Version)
}

func TestRegistryFileOverridesSelectively(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := "market_leaders:\n  - Replit\nstrategic_reads:\n  price_up_major: Premium repositioning\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	reg, err := NewRegistry(path)
	require.NoError(t, err)
	r := reg.Rules()

	assert.True(t, r.IsLeader("Replit"))
	assert.False(t, r.IsLeader("Cursor"), "override replaces the leaders list")
	assert.Equal(t, "Premium repositioning", r.Read(ReadPriceUpMajor))
	assert.Equal(t, Default().Read(ReadPriceDownMajor), r.Read(ReadPriceDownMajor), "untouched reads keep defaults")
	assert.Equal(t, Default().CriticalFeatures, r.CriticalFeatures, "untouched sections keep defaults")
}

func TestRegistryRejectsUnreadableFile(t *testing.T) {
	_, err := NewRegistry(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestWriteDefaultRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, WriteDefault(path))

	reg, err := NewRegistry(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), reg.Rules())

	assert.Error(t, WriteDefault(path))
}
