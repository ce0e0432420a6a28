package collector

import (
	"context"
	"time"

	"rivalwatch/internal/classify"
	"rivalwatch/internal/logger"
	"rivalwatch/internal/notifier"
	"rivalwatch/internal/rules"
	"rivalwatch/internal/store"
	"rivalwatch/internal/types"

	"golang.org/x/sync/errgroup"
)

// Source is one configured input document.
type Source struct {
	Name      string
	Domain    types.Domain
	Path      string
	Retention time.Duration
}

// Collector runs the per-source load → diff → classify → persist pipeline.
// All dependencies are injected; the collector owns no global state.
type Collector struct {
	sources   []Source
	snapshots store.SnapshotStore
	alerts    store.AlertStore
	registry  *rules.Registry
	notify    notifier.TextNotifier
	minNotify types.Severity
	parallel  int
	now       func() time.Time
}

// Option tweaks collector construction.
type Option func(*Collector)

// WithClock overrides the clock; each Run captures it exactly once.
func WithClock(now func() time.Time) Option {
	return func(c *Collector) { c.now = now }
}

// WithNotifier pushes alerts at or above min severity to n.
func WithNotifier(n notifier.TextNotifier, min types.Severity) Option {
	return func(c *Collector) {
		c.notify = n
		c.minNotify = min
	}
}

// WithParallelism bounds concurrent source passes. Sources touch disjoint
// domain files, so cross-source parallelism is safe; 1 means sequential.
func WithParallelism(n int) Option {
	return func(c *Collector) {
		if n > 0 {
			c.parallel = n
		}
	}
}

func New(sources []Source, snapshots store.SnapshotStore, alerts store.AlertStore, registry *rules.Registry, opts ...Option) *Collector {
	c := &Collector{
		sources:   sources,
		snapshots: snapshots,
		alerts:    alerts,
		registry:  registry,
		parallel:  1,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run executes one batch over every configured source. A single source's
// failure degrades to error strings on its result; the batch always
// completes and persists whatever could be computed.
func (c *Collector) Run(ctx context.Context) types.BatchResult {
	now := c.now()
	classifier := classify.New(c.registry.Rules())
	batch := types.BatchResult{
		StartedAt: now,
		Results:   make([]types.CollectionResult, len(c.sources)),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.parallel)
	for i, src := range c.sources {
		i, src := i, src
		g.Go(func() error {
			batch.Results[i] = c.collectSource(ctx, src, now, classifier)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures live on the results

	for _, r := range batch.Results {
		for _, msg := range r.Errors {
			logger.Errorf("source %s: %s", r.Source, msg)
		}
	}
	logger.Infof("batch done: sources=%d changes=%d errors=%d",
		len(batch.Results), totalChanges(batch), batch.ErrorCount())
	return batch
}

func (c *Collector) collectSource(ctx context.Context, src Source, now time.Time, classifier *classify.Classifier) types.CollectionResult {
	result := types.CollectionResult{Source: src.Name, Domain: src.Domain, Timestamp: now}
	if err := ctx.Err(); err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	raw, changes, err := c.loadAndDiff(src)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	result.Changes = changes

	var alerts []types.CompetitiveAlert
	for competitor, set := range groupByCompetitor(changes) {
		if alert := classifier.Classify(competitor, src.Domain, set, now); alert != nil {
			alerts = append(alerts, *alert)
		}
	}
	result.Alerts = len(alerts)

	entry := types.HistoryEntry{Timestamp: now, Data: raw}
	if err := c.snapshots.AppendHistory(src.Domain, entry, src.Retention, now); err != nil {
		result.Errors = append(result.Errors, "append history: "+err.Error())
	}
	if len(alerts) > 0 {
		if err := c.alerts.Append(alerts...); err != nil {
			result.Errors = append(result.Errors, "persist alerts: "+err.Error())
		}
		c.pushNotifications(alerts)
	}
	return result
}

// pushNotifications best-effort posts qualifying alerts; a notifier failure
// never fails the source.
func (c *Collector) pushNotifications(alerts []types.CompetitiveAlert) {
	if c.notify == nil {
		return
	}
	for _, alert := range alerts {
		if !alert.Severity.AtLeast(c.minNotify) {
			continue
		}
		if err := c.notify.SendText(notifier.FormatAlert(alert)); err != nil {
			logger.Warnf("notify alert %s failed: %v", alert.ID, err)
		}
	}
}

func groupByCompetitor(changes []types.Change) map[string][]types.Change {
	groups := map[string][]types.Change{}
	for _, ch := range changes {
		groups[ch.Competitor] = append(groups[ch.Competitor], ch)
	}
	return groups
}

func totalChanges(batch types.BatchResult) int {
	n := 0
	for _, r := range batch.Results {
		n += len(r.Changes)
	}
	return n
}
