package store

import (
	"context"
	"sync"

	"poultry360/internal/api"
	"poultry360/internal/domain"
)

// LookupStrategy selects how a store resolves a single record by id.
type LookupStrategy int

const (
	// LookupRemote asks the server for the record directly.
	LookupRemote LookupStrategy = iota
	// LookupCached reloads the first hundred records and scans them. A
	// miss leaves the current record empty without raising an error.
	LookupCached
)

const cachedLookupLimit = 100

// FarmStore caches the farm list and the currently selected farm.
type FarmStore struct {
	*Collection[domain.Farm]
	client  *api.Client
	lookup  LookupStrategy
	curMu   sync.Mutex
	current *domain.Farm
}

func NewFarmStore(client *api.Client) *FarmStore {
	s := &FarmStore{client: client, lookup: LookupRemote}
	s.Collection = NewCollection("farms", func(ctx context.Context) (*domain.Page[domain.Farm], error) {
		return client.ListFarms(ctx, 1, 0)
	})
	return s
}

// SetLookupStrategy overrides how Lookup resolves a farm.
func (s *FarmStore) SetLookupStrategy(strategy LookupStrategy) {
	s.curMu.Lock()
	s.lookup = strategy
	s.curMu.Unlock()
}

// Current returns the last looked-up farm, if any.
func (s *FarmStore) Current() *domain.Farm {
	s.curMu.Lock()
	defer s.curMu.Unlock()
	return s.current
}

// Lookup resolves one farm by id and stores it as the current record.
// Failures are recorded, not returned, matching Refresh.
func (s *FarmStore) Lookup(ctx context.Context, id int) {
	s.curMu.Lock()
	strategy := s.lookup
	s.curMu.Unlock()

	s.setLoading(true)

	var (
		farm *domain.Farm
		err  error
	)
	switch strategy {
	case LookupCached:
		page, listErr := s.client.ListFarms(ctx, 1, cachedLookupLimit)
		farm, err = findByID(page, listErr, id, func(f domain.Farm) int { return f.ID })
	default:
		farm, err = s.client.GetFarm(ctx, id)
	}

	if err != nil {
		s.recordError("Failed to fetch farm", err)
		return
	}
	s.curMu.Lock()
	s.current = farm
	s.curMu.Unlock()
	s.setLoading(false)
}

func (s *FarmStore) Create(ctx context.Context, params domain.FarmParams) error {
	return s.mutate("Failed to create farm", func() error {
		_, err := s.client.CreateFarm(ctx, params)
		return err
	})
}

func (s *FarmStore) Update(ctx context.Context, id int, params domain.FarmParams) error {
	return s.mutate("Failed to update farm", func() error {
		_, err := s.client.UpdateFarm(ctx, id, params)
		return err
	})
}

func (s *FarmStore) Delete(ctx context.Context, id int) error {
	return s.mutate("Failed to delete farm", func() error {
		_, err := s.client.DeleteFarm(ctx, id)
		return err
	})
}

// findByID scans a cached page for a record. A fetch error propagates; a
// miss yields a nil record and no error.
func findByID[T any](page *domain.Page[T], err error, id int, idOf func(T) int) (*T, error) {
	if err != nil {
		return nil, err
	}
	for i := range page.Data {
		if idOf(page.Data[i]) == id {
			return &page.Data[i], nil
		}
	}
	return nil, nil
}
