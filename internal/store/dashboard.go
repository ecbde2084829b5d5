package store

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"poultry360/internal/api"
	"poultry360/internal/domain"
	"poultry360/internal/logging"
)

// DashboardStore aggregates the overview counters, the recent activity
// feed, and the per-flock performance ranking. The three endpoints are
// fetched concurrently; a slice that loaded before a sibling failed is
// kept, and the first failure becomes the display error.
type DashboardStore struct {
	client *api.Client

	mu          sync.Mutex
	overview    *domain.DashboardOverview
	activities  []domain.Activity
	performance []domain.ProductionPerformance
	loading     bool
	errMsg      string
	seq         uint64
	listeners   []func()

	ActivityLimit     int
	PerformancePeriod string
}

func NewDashboardStore(client *api.Client) *DashboardStore {
	return &DashboardStore{client: client}
}

// OnChange registers a listener invoked after every state change.
func (s *DashboardStore) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *DashboardStore) notify() {
	s.mu.Lock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}

// Refresh fans out to the three dashboard endpoints. Like list stores,
// failures are recorded rather than returned, and a superseded refresh
// is discarded wholesale.
func (s *DashboardStore) Refresh(ctx context.Context) {
	s.mu.Lock()
	s.seq++
	stamp := s.seq
	s.loading = true
	s.errMsg = ""
	limit := s.ActivityLimit
	period := s.PerformancePeriod
	s.mu.Unlock()
	s.notify()

	var (
		overview    *domain.DashboardOverview
		activities  []domain.Activity
		performance []domain.ProductionPerformance
	)

	// No shared cancellation: one failing section must not abort the
	// others mid-flight.
	var g errgroup.Group
	g.Go(func() error {
		var err error
		overview, err = s.client.DashboardOverview(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		activities, err = s.client.RecentActivities(ctx, limit)
		return err
	})
	g.Go(func() error {
		var err error
		performance, err = s.client.ProductionPerformance(ctx, period)
		return err
	})
	err := g.Wait()

	s.mu.Lock()
	if stamp != s.seq {
		s.mu.Unlock()
		logging.StoreDebug("dashboard: discarding superseded load (stamp %d)", stamp)
		return
	}
	s.loading = false
	if err != nil {
		s.errMsg = api.ServerMessage(err, "Failed to load dashboard")
		logging.Store("dashboard: load failed: %v", err)
	}
	if overview != nil {
		s.overview = overview
	}
	if activities != nil {
		s.activities = activities
	}
	if performance != nil {
		s.performance = performance
	}
	s.mu.Unlock()
	s.notify()
}

func (s *DashboardStore) Overview() *domain.DashboardOverview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.overview
}

func (s *DashboardStore) Activities() []domain.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Activity, len(s.activities))
	copy(out, s.activities)
	return out
}

func (s *DashboardStore) Performance() []domain.ProductionPerformance {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ProductionPerformance, len(s.performance))
	copy(out, s.performance)
	return out
}

func (s *DashboardStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *DashboardStore) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}
