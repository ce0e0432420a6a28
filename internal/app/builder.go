package app

import (
	"fmt"
	"path/filepath"

	"rivalwatch/internal/collector"
	"rivalwatch/internal/config"
	"rivalwatch/internal/intel"
	"rivalwatch/internal/notifier"
	"rivalwatch/internal/rules"
	"rivalwatch/internal/store"
	"rivalwatch/internal/transport/http/api"
	"rivalwatch/internal/types"
)

// NewApp wires the engine from config: stores, rules, collector, intel
// service and the optional query server. Everything is constructor-injected;
// tests can assemble the same pieces around in-memory stores.
func NewApp(cfg *config.Config) (*App, error) {
	snapshots, err := store.NewFileSnapshotStore(cfg.App.DataDir)
	if err != nil {
		return nil, fmt.Errorf("snapshot store: %w", err)
	}
	alerts, err := store.NewFileAlertStore(cfg.App.DataDir)
	if err != nil {
		return nil, fmt.Errorf("alert store: %w", err)
	}
	registry, err := rules.NewRegistry(cfg.Rules.Path)
	if err != nil {
		return nil, fmt.Errorf("rules registry: %w", err)
	}

	sources := make([]collector.Source, 0, len(cfg.Sources))
	for _, s := range cfg.Sources {
		path := s.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.App.DataDir, path)
		}
		sources = append(sources, collector.Source{
			Name:      s.Name,
			Domain:    types.Domain(s.Domain),
			Path:      path,
			Retention: s.Retention(),
		})
	}

	opts := []collector.Option{collector.WithParallelism(cfg.Collect.Parallel)}
	if cfg.Notify.Telegram.Enabled {
		tg := notifier.NewTelegram(cfg.Notify.Telegram.BotToken, cfg.Notify.Telegram.ChatID)
		opts = append(opts, collector.WithNotifier(tg, types.ParseSeverity(cfg.Notify.Telegram.MinSeverity)))
	}
	coll := collector.New(sources, snapshots, alerts, registry, opts...)

	app := &App{
		cfg:       cfg,
		collector: coll,
		intel:     intel.NewService(snapshots, alerts, registry, nil),
	}
	if cfg.App.HTTPAddr != "" {
		server, err := apihttp.NewServer(apihttp.ServerConfig{
			Addr:        cfg.App.HTTPAddr,
			Intel:       app.intel,
			LatestBatch: app.LatestBatch,
		})
		if err != nil {
			return nil, fmt.Errorf("api server: %w", err)
		}
		app.server = server
	}
	return app, nil
}
