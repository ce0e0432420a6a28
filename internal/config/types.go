package config

import "time"

// Config is the top-level configuration for the engine.
type Config struct {
	App     AppConfig      `mapstructure:"app"`
	Collect CollectConfig  `mapstructure:"collect"`
	Sources []SourceConfig `mapstructure:"sources"`
	Rules   RulesConfig    `mapstructure:"rules"`
	Notify  NotifyConfig   `mapstructure:"notify"`
}

type AppConfig struct {
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
	LogPath  string `mapstructure:"log_path"`
	HTTPAddr string `mapstructure:"http_addr"`
	DataDir  string `mapstructure:"data_dir"`
}

// CollectConfig controls how batch runs are driven. Mode "once" runs a single
// batch and exits; "daemon" reruns every Interval.
type CollectConfig struct {
	Mode           string `mapstructure:"mode"`
	Interval       string `mapstructure:"interval"`
	RunImmediately bool   `mapstructure:"run_immediately"`
	Parallel       int    `mapstructure:"parallel"`
}

// SourceConfig describes one input document and its history retention.
type SourceConfig struct {
	Name          string `mapstructure:"name"`
	Domain        string `mapstructure:"domain"`
	Path          string `mapstructure:"path"`
	RetentionDays int    `mapstructure:"retention_days"`
}

// Retention converts the configured day count to a duration.
func (s SourceConfig) Retention() time.Duration {
	return time.Duration(s.RetentionDays) * 24 * time.Hour
}

type RulesConfig struct {
	Path string `mapstructure:"path"`
}

type NotifyConfig struct {
	Telegram TelegramConfig `mapstructure:"telegram"`
}

type TelegramConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	BotToken    string `mapstructure:"bot_token"`
	ChatID      string `mapstructure:"chat_id"`
	MinSeverity string `mapstructure:"min_severity"`
}
