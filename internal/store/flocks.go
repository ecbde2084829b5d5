package store

import (
	"context"
	"sync"

	"poultry360/internal/api"
	"poultry360/internal/domain"
)

// FlockStore caches the flock list and the currently selected flock. By
// default a single-flock lookup scans the cached list rather than asking
// the server, so a flock past the first hundred resolves as a miss.
type FlockStore struct {
	*Collection[domain.Batch]
	client  *api.Client
	lookup  LookupStrategy
	curMu   sync.Mutex
	current *domain.Batch
}

func NewFlockStore(client *api.Client) *FlockStore {
	s := &FlockStore{client: client, lookup: LookupCached}
	s.Collection = NewCollection("flocks", func(ctx context.Context) (*domain.Page[domain.Batch], error) {
		return client.ListBatches(ctx, 1, cachedLookupLimit)
	})
	return s
}

// SetLookupStrategy overrides how Lookup resolves a flock.
func (s *FlockStore) SetLookupStrategy(strategy LookupStrategy) {
	s.curMu.Lock()
	s.lookup = strategy
	s.curMu.Unlock()
}

// Current returns the last looked-up flock, if any. A cached lookup that
// missed leaves it nil.
func (s *FlockStore) Current() *domain.Batch {
	s.curMu.Lock()
	defer s.curMu.Unlock()
	return s.current
}

// Lookup resolves one flock by id and stores it as the current record.
func (s *FlockStore) Lookup(ctx context.Context, id int) {
	s.curMu.Lock()
	strategy := s.lookup
	s.curMu.Unlock()

	s.setLoading(true)

	var (
		batch *domain.Batch
		err   error
	)
	switch strategy {
	case LookupRemote:
		batch, err = s.client.GetBatch(ctx, id)
	default:
		page, listErr := s.client.ListBatches(ctx, 1, cachedLookupLimit)
		batch, err = findByID(page, listErr, id, func(b domain.Batch) int { return b.ID })
	}

	if err != nil {
		s.recordError("Failed to fetch flock", err)
		return
	}
	s.curMu.Lock()
	s.current = batch
	s.curMu.Unlock()
	s.setLoading(false)
}

func (s *FlockStore) Create(ctx context.Context, params domain.BatchParams) error {
	return s.mutate("Failed to create flock", func() error {
		_, err := s.client.CreateBatch(ctx, params)
		return err
	})
}

func (s *FlockStore) Update(ctx context.Context, id int, params domain.BatchParams) error {
	return s.mutate("Failed to update flock", func() error {
		_, err := s.client.UpdateBatch(ctx, id, params)
		return err
	})
}

func (s *FlockStore) Delete(ctx context.Context, id int) error {
	return s.mutate("Failed to delete flock", func() error {
		_, err := s.client.DeleteBatch(ctx, id)
		return err
	})
}
