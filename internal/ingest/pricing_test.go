package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePricing = `{
  "categories": [
    {
      "id": "ide",
      "tools": [
        {
          "name": "Cursor",
          "website": "https://cursor.com",
          "freeTier": true,
          "individual": {"price": 20, "period": "month"},
          "team": {"price": 40, "period": "month"},
          "enterprise": "custom"
        },
        {
          "name": "Windsurf",
          "freeTier": "generous",
          "individual": {"price": 15, "period": "month"}
        }
      ]
    },
    {
      "id": "terminal",
      "tools": [
        {"name": "Aider", "freeTier": false}
      ]
    }
  ]
}`

func TestParsePricing(t *testing.T) {
	snap, err := ParsePricing([]byte(samplePricing))
	require.NoError(t, err)
	require.Len(t, snap.Tools, 3)

	cursor := snap.Tools["Cursor"]
	assert.Equal(t, "https://cursor.com", cursor.Website)
	assert.True(t, cursor.FreeTier)
	require.NotNil(t, cursor.Individual)
	assert.Equal(t, 20.0, cursor.Individual.Price)
	assert.Equal(t, "month", cursor.Individual.Period)
	require.NotNil(t, cursor.Enterprise)
	assert.Equal(t, "custom", cursor.Enterprise.Note)
	assert.False(t, cursor.Enterprise.Priced())

	windsurf := snap.Tools["Windsurf"]
	assert.True(t, windsurf.FreeTier, "string free tier means present")
	assert.Nil(t, windsurf.Team)

	aider := snap.Tools["Aider"]
	assert.False(t, aider.FreeTier)
	assert.Nil(t, aider.Individual)
}

func TestParsePricingMalformedJSON(t *testing.T) {
	_, err := ParsePricing([]byte(`{"categories": [`))
	assert.ErrorIs(t, err, ErrParse)
}

func TestParsePricingSchemaViolation(t *testing.T) {
	_, err := ParsePricing([]byte(`{"categories": "not-an-array"}`))
	assert.ErrorIs(t, err, ErrParse)

	_, err = ParsePricing([]byte(`{}`))
	assert.ErrorIs(t, err, ErrParse, "categories is required")
}

func TestParsePricingSkipsNamelessTools(t *testing.T) {
	snap, err := ParsePricing([]byte(`{"categories":[{"tools":[{"name":"  "}]}]}`))
	require.NoError(t, err)
	assert.Empty(t, snap.Tools)
}
