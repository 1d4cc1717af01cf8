package company

import (
	"context"
	"fmt"
	"sync"
	"time"

	"onboarding-engine/internal/common/logger"
	"onboarding-engine/internal/common/metrics"
	"onboarding-engine/internal/common/observability"
	"onboarding-engine/internal/menu"
	"onboarding-engine/internal/models"
)

// StepSubmitFunc sends one wizard step's data to the backend.
type StepSubmitFunc func(ctx context.Context) error

// Service owns the cached company record and the navigation graph
// derived from it. Readers always see a menu set consistent with one
// record snapshot.
type Service struct {
	mu            sync.RWMutex
	fetcher       Fetcher
	log           logger.Logger
	obs           *observability.Observability
	record        *models.CompanyRecord
	menus         []models.Menu
	isCalculating bool
	lastRefresh   time.Time
}

// NewService creates a service with an empty record. Call Refresh to
// load the first snapshot.
func NewService(fetcher Fetcher, log logger.Logger, obs *observability.Observability) *Service {
	return &Service{
		fetcher: fetcher,
		log:     log,
		obs:     obs,
		menus:   menu.Build(nil),
	}
}

// Refresh fetches the record and rebuilds the whole menu graph from it.
// On fetch failure the previous snapshot stays in place.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.isCalculating = true
	s.mu.Unlock()

	start := time.Now()
	record, err := s.fetcher.FetchRecord(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isCalculating = false

	if err != nil {
		if s.obs != nil {
			s.obs.RecordRefresh(ctx, "error")
			s.obs.RecordRefreshDuration(ctx, time.Since(start), "error")
		}
		return fmt.Errorf("refresh company profile: %w", err)
	}

	s.record = record
	s.menus = menu.Build(record)
	s.lastRefresh = time.Now()
	metrics.MenuRebuilds.Inc()
	if s.obs != nil {
		s.obs.RecordRefresh(ctx, "success")
		s.obs.RecordRefreshDuration(ctx, time.Since(start), "success")
	}

	s.log.Info("navigation graph rebuilt", map[string]interface{}{
		"hasRecord": record != nil,
		"menus":     len(s.menus),
	})
	return nil
}

// SubmitStep runs a step submission and then refreshes. Menus never
// change optimistically: completion only moves when the backend's own
// record says so.
func (s *Service) SubmitStep(ctx context.Context, submit StepSubmitFunc) error {
	if err := submit(ctx); err != nil {
		return fmt.Errorf("submit step: %w", err)
	}
	return s.Refresh(ctx)
}

// Record returns the current record snapshot, nil before the first
// successful refresh or when no application exists yet.
func (s *Service) Record() *models.CompanyRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.record
}

// Menus returns the current navigation graph.
func (s *Service) Menus() []models.Menu {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Menu, len(s.menus))
	copy(out, s.menus)
	return out
}

// IsCalculating reports whether a refresh is in flight.
func (s *Service) IsCalculating() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isCalculating
}

// LastRefresh returns when the snapshot was last rebuilt, zero before
// the first refresh.
func (s *Service) LastRefresh() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRefresh
}
