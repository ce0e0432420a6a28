package config

import "strings"

const (
	defaultAppEnv          = "dev"
	defaultAppLogLevel     = "info"
	defaultAppDataDir      = "data"
	defaultCollectMode     = "once"
	defaultCollectInterval = "6h"
	defaultCollectParallel = 1
	defaultRetentionDays   = 30
	defaultNewsRetention   = 7
	defaultNotifySeverity  = "high"
)

// defaultSources covers every tracked domain; a config that lists its own
// sources replaces this set entirely.
func defaultSources() []SourceConfig {
	return []SourceConfig{
		{Name: "pricing", Domain: "pricing", Path: "pricing.json", RetentionDays: defaultRetentionDays},
		{Name: "features", Domain: "features", Path: "feature-matrix.json", RetentionDays: defaultRetentionDays},
		{Name: "jobs", Domain: "jobs", Path: "jobs.json", RetentionDays: defaultRetentionDays},
		{Name: "social", Domain: "social", Path: "social.json", RetentionDays: defaultRetentionDays},
		{Name: "funding", Domain: "funding", Path: "funding.json", RetentionDays: defaultRetentionDays},
		{Name: "news", Domain: "news", Path: "news.json", RetentionDays: defaultNewsRetention},
	}
}

func (c *Config) applyDefaults() {
	c.App.applyDefaults()
	c.Collect.applyDefaults()
	if len(c.Sources) == 0 {
		c.Sources = defaultSources()
	}
	for i := range c.Sources {
		s := &c.Sources[i]
		if strings.TrimSpace(s.Name) == "" {
			s.Name = s.Domain
		}
		if s.RetentionDays <= 0 {
			if s.Domain == "news" {
				s.RetentionDays = defaultNewsRetention
			} else {
				s.RetentionDays = defaultRetentionDays
			}
		}
	}
	if strings.TrimSpace(c.Notify.Telegram.MinSeverity) == "" {
		c.Notify.Telegram.MinSeverity = defaultNotifySeverity
	}
}

func (a *AppConfig) applyDefaults() {
	if strings.TrimSpace(a.Env) == "" {
		a.Env = defaultAppEnv
	}
	if strings.TrimSpace(a.LogLevel) == "" {
		a.LogLevel = defaultAppLogLevel
	}
	if strings.TrimSpace(a.DataDir) == "" {
		a.DataDir = defaultAppDataDir
	}
}

func (c *CollectConfig) applyDefaults() {
	if strings.TrimSpace(c.Mode) == "" {
		c.Mode = defaultCollectMode
	}
	if strings.TrimSpace(c.Interval) == "" {
		c.Interval = defaultCollectInterval
	}
	if c.Parallel <= 0 {
		c.Parallel = defaultCollectParallel
	}
}
