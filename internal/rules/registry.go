package rules

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"rivalwatch/internal/logger"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Snapshot is a point-in-time copy of the active rule set.
type Snapshot struct {
	Version  int64
	LoadedAt time.Time
	Rules    Rules
}

// Registry serves the active rules and hot-reloads the optional rules file.
// A reload failure logs and keeps the previous snapshot.
type Registry struct {
	path string
	v    *viper.Viper

	mu       sync.RWMutex
	snapshot Snapshot
}

// NewRegistry builds a registry. An empty path serves the built-in defaults
// with no file watching.
func NewRegistry(path string) (*Registry, error) {
	r := &Registry{path: strings.TrimSpace(path)}
	if r.path == "" {
		r.store(Default())
		return r, nil
	}
	v := viper.New()
	v.SetConfigFile(r.path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read rules file failed: %w", err)
	}
	r.v = v
	if err := r.reload(); err != nil {
		return nil, err
	}
	v.OnConfigChange(func(evt fsnotify.Event) {
		if err := r.reload(); err != nil {
			logger.Errorf("rules reload failed (%s): %v", evt.Name, err)
			return
		}
		logger.Infof("rules reloaded from %s", r.path)
	})
	v.WatchConfig()
	return r, nil
}

// Snapshot returns the current rule set.
func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}

// Rules is shorthand for Snapshot().Rules.
func (r *Registry) Rules() Rules {
	return r.Snapshot().Rules
}

func (r *Registry) reload() error {
	if err := r.v.ReadInConfig(); err != nil {
		return fmt.Errorf("read rules file failed: %w", err)
	}
	var override Rules
	if err := r.v.Unmarshal(&override); err != nil {
		return fmt.Errorf("parse rules file failed: %w", err)
	}
	r.store(merge(Default(), override))
	return nil
}

func (r *Registry) store(rules Rules) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = Snapshot{
		Version:  r.snapshot.Version + 1,
		LoadedAt: time.Now(),
		Rules:    rules,
	}
}

// WriteDefault writes the built-in rule set as a starter rules file.
// Refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("rules file already exists: %s", path)
	}
	buf, err := yaml.Marshal(Default())
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0o644)
}
