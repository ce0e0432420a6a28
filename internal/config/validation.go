package config

import (
	"fmt"
	"strings"
)

var knownDomains = map[string]bool{
	"pricing":  true,
	"features": true,
	"jobs":     true,
	"social":   true,
	"funding":  true,
	"news":     true,
}

func validate(c *Config) error {
	if err := c.Collect.validate(); err != nil {
		return err
	}
	if err := validateSources(c.Sources); err != nil {
		return err
	}
	return c.Notify.validate()
}

func (cc *CollectConfig) validate() error {
	switch cc.Mode {
	case "once", "daemon":
	default:
		return fmt.Errorf("collect.mode must be once or daemon, got %q", cc.Mode)
	}
	return nil
}

func validateSources(sources []SourceConfig) error {
	seen := make(map[string]bool, len(sources))
	for _, s := range sources {
		if !knownDomains[s.Domain] {
			return fmt.Errorf("sources.%s has unknown domain %q", s.Name, s.Domain)
		}
		if strings.TrimSpace(s.Path) == "" {
			return fmt.Errorf("sources.%s missing path", s.Name)
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate source name %q", s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}

func (n *NotifyConfig) validate() error {
	t := n.Telegram
	if t.Enabled && (strings.TrimSpace(t.BotToken) == "" || strings.TrimSpace(t.ChatID) == "") {
		return fmt.Errorf("notify.telegram requires bot_token and chat_id when enabled")
	}
	return nil
}
