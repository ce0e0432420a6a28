package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEmptyPathYieldsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "once", cfg.Collect.Mode)
	assert.Equal(t, "6h", cfg.Collect.Interval)
	assert.Equal(t, 1, cfg.Collect.Parallel)
	assert.Equal(t, "data", cfg.App.DataDir)
	require.Len(t, cfg.Sources, 6)

	byDomain := map[string]SourceConfig{}
	for _, s := range cfg.Sources {
		byDomain[s.Domain] = s
	}
	assert.Equal(t, 30, byDomain["pricing"].RetentionDays)
	assert.Equal(t, 30, byDomain["funding"].RetentionDays)
	assert.Equal(t, 7, byDomain["news"].RetentionDays)
	assert.Equal(t, 7*24*time.Hour, byDomain["news"].Retention())
}

func TestLoadOverridesAndFillsGaps(t *testing.T) {
	path := writeConfig(t, `
app:
  log_level: debug
  data_dir: /var/lib/rivalwatch
collect:
  mode: daemon
  interval: 1h
sources:
  - name: pricing
    domain: pricing
    path: pricing.json
  - name: news
    domain: news
    path: news.json
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "daemon", cfg.Collect.Mode)
	require.Len(t, cfg.Sources, 2)
	assert.Equal(t, 30, cfg.Sources[0].RetentionDays, "unset retention defaults by domain")
	assert.Equal(t, 7, cfg.Sources[1].RetentionDays)
}

func TestLoadRejectsUnknownDomain(t *testing.T) {
	path := writeConfig(t, `
sources:
  - name: bad
    domain: telemetry
    path: t.json
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown domain")
}

func TestLoadRejectsBadMode(t *testing.T) {
	path := writeConfig(t, "collect:\n  mode: forever\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsDuplicateSourceNames(t *testing.T) {
	path := writeConfig(t, `
sources:
  - name: pricing
    domain: pricing
    path: a.json
  - name: pricing
    domain: features
    path: b.json
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate source name")
}

func TestLoadRejectsHalfConfiguredTelegram(t *testing.T) {
	path := writeConfig(t, "notify:\n  telegram:\n    enabled: true\n    bot_token: abc\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat_id")
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
