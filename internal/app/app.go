package app

import (
	"context"
	"sync/atomic"

	"rivalwatch/internal/collector"
	"rivalwatch/internal/config"
	"rivalwatch/internal/intel"
	"rivalwatch/internal/logger"
	"rivalwatch/internal/scheduler"
	"rivalwatch/internal/transport/http/api"
	"rivalwatch/internal/types"
)

// App is the assembled engine.
type App struct {
	cfg       *config.Config
	collector *collector.Collector
	intel     *intel.Service
	server    *apihttp.Server

	lastBatch atomic.Pointer[types.BatchResult]
}

// LatestBatch returns the most recent batch result, or nil before the first run.
func (a *App) LatestBatch() *types.BatchResult {
	return a.lastBatch.Load()
}

// Intel exposes the query service (used by tests and embedding callers).
func (a *App) Intel() *intel.Service {
	return a.intel
}

// Run executes according to collect.mode: "once" runs a single batch and
// returns; "daemon" reruns on the configured interval until ctx cancels.
// The query server, when configured, serves for the lifetime of Run.
func (a *App) Run(ctx context.Context) error {
	if err := a.intel.Refresh(); err != nil {
		// Stale or absent history is fine on first boot; queries start empty.
		logger.Warnf("initial registry refresh: %v", err)
	}

	serverErr := make(chan error, 1)
	if a.server != nil {
		go func() { serverErr <- a.server.Run(ctx) }()
	}

	if a.cfg.Collect.Mode == "daemon" {
		interval, ok := scheduler.ParseIntervalDuration(a.cfg.Collect.Interval)
		if !ok {
			logger.Warnf("invalid collect.interval=%q, falling back to 6h", a.cfg.Collect.Interval)
			interval, _ = scheduler.ParseIntervalDuration("6h")
		}
		sched := scheduler.NewIntervalScheduler(ctx, interval)
		sched.RunImmediately = a.cfg.Collect.RunImmediately
		sched.Start(a.runBatch)
	} else {
		a.runBatch()
		if a.server != nil {
			// once + server: keep serving until cancelled.
			<-ctx.Done()
		}
	}

	if a.server != nil {
		return <-serverErr
	}
	return nil
}

func (a *App) runBatch() {
	batch := a.collector.Run(context.Background())
	a.lastBatch.Store(&batch)
	if err := a.intel.Refresh(); err != nil {
		logger.Errorf("registry refresh after batch failed: %v", err)
	}
}
