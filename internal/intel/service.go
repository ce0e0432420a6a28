package intel

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"rivalwatch/internal/ingest"
	"rivalwatch/internal/rules"
	"rivalwatch/internal/store"
	"rivalwatch/internal/threat"
	"rivalwatch/internal/types"
)

// Service is the read-only query surface over the stored intelligence: the
// competitor registry plus alert and threat queries. It is built per process
// and refreshed per run; there is no module-level registry.
type Service struct {
	snapshots store.SnapshotStore
	alerts    store.AlertStore
	registry  *rules.Registry
	now       func() time.Time

	mu       sync.RWMutex
	profiles map[string]*types.CompetitorProfile
}

func NewService(snapshots store.SnapshotStore, alerts store.AlertStore, registry *rules.Registry, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		snapshots: snapshots,
		alerts:    alerts,
		registry:  registry,
		now:       now,
		profiles:  map[string]*types.CompetitorProfile{},
	}
}

// Refresh rebuilds the competitor registry from the latest pricing and
// feature snapshots. The collector calls it after every batch.
func (s *Service) Refresh() error {
	profiles := map[string]*types.CompetitorProfile{}

	pricingEntry, err := s.snapshots.Latest(types.DomainPricing)
	if err != nil {
		return fmt.Errorf("load pricing snapshot failed: %w", err)
	}
	if pricingEntry != nil {
		snap, err := ingest.ParsePricing(pricingEntry.Data)
		if err != nil {
			return fmt.Errorf("stored pricing snapshot: %w", err)
		}
		for name, tool := range snap.Tools {
			p := ensureProfile(profiles, name, pricingEntry.Timestamp)
			p.Website = tool.Website
			p.Pricing = &types.PricingPlan{
				FreeTier:   tool.FreeTier,
				Individual: tool.Individual,
				Team:       tool.Team,
				Enterprise: tool.Enterprise,
			}
		}
	}

	featureEntry, err := s.snapshots.Latest(types.DomainFeatures)
	if err != nil {
		return fmt.Errorf("load feature snapshot failed: %w", err)
	}
	if featureEntry != nil {
		snap, err := ingest.ParseFeatures(featureEntry.Data)
		if err != nil {
			return fmt.Errorf("stored feature snapshot: %w", err)
		}
		for name, features := range snap.Competitors {
			p := ensureProfile(profiles, name, featureEntry.Timestamp)
			p.Features = features
		}
	}

	s.mu.Lock()
	s.profiles = profiles
	s.mu.Unlock()
	return nil
}

func ensureProfile(profiles map[string]*types.CompetitorProfile, name string, updated time.Time) *types.CompetitorProfile {
	p, ok := profiles[name]
	if !ok {
		p = &types.CompetitorProfile{Name: name}
		profiles[name] = p
	}
	if updated.After(p.LastUpdated) {
		p.LastUpdated = updated
	}
	return p
}

// AllCompetitors returns every known profile, sorted by name.
func (s *Service) AllCompetitors() []types.CompetitorProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.CompetitorProfile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Competitor returns one profile, or nil when the name is unknown.
func (s *Service) Competitor(name string) *types.CompetitorProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// RecentAlerts returns alerts from the last `days` days, newest first.
func (s *Service) RecentAlerts(days int) ([]types.CompetitiveAlert, error) {
	return s.alerts.Recent(days, s.now())
}

// ThreatScore computes the 0-100 threat ranking for a competitor.
// Unknown names score 0; that is an answer, not an error.
func (s *Service) ThreatScore(name string) int {
	r := s.registry.Rules()
	return threat.Score(s.Competitor(name), r.MarketLeaders, r.CriticalFeatures)
}
