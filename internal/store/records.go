package store

import (
	"context"

	"poultry360/internal/api"
	"poultry360/internal/domain"
)

// ProductionStore caches daily egg production records.
type ProductionStore struct {
	*Collection[domain.ProductionRecord]
	client *api.Client
}

func NewProductionStore(client *api.Client) *ProductionStore {
	s := &ProductionStore{client: client}
	s.Collection = NewCollection("production records", func(ctx context.Context) (*domain.Page[domain.ProductionRecord], error) {
		return client.ListProductionRecords(ctx, 1, 0)
	})
	return s
}

func (s *ProductionStore) Create(ctx context.Context, params domain.ProductionParams) error {
	return s.mutate("Failed to create production record", func() error {
		_, err := s.client.CreateProductionRecord(ctx, params)
		return err
	})
}

func (s *ProductionStore) Update(ctx context.Context, id int, params domain.ProductionParams) error {
	return s.mutate("Failed to update production record", func() error {
		_, err := s.client.UpdateProductionRecord(ctx, id, params)
		return err
	})
}

func (s *ProductionStore) Delete(ctx context.Context, id int) error {
	return s.mutate("Failed to delete production record", func() error {
		_, err := s.client.DeleteProductionRecord(ctx, id)
		return err
	})
}

// FeedStore caches feed usage records.
type FeedStore struct {
	*Collection[domain.FeedRecord]
	client *api.Client
}

func NewFeedStore(client *api.Client) *FeedStore {
	s := &FeedStore{client: client}
	s.Collection = NewCollection("feed records", func(ctx context.Context) (*domain.Page[domain.FeedRecord], error) {
		return client.ListFeedRecords(ctx, 1, 0)
	})
	return s
}

func (s *FeedStore) Create(ctx context.Context, params domain.FeedParams) error {
	return s.mutate("Failed to create feed record", func() error {
		_, err := s.client.CreateFeedRecord(ctx, params)
		return err
	})
}

func (s *FeedStore) Delete(ctx context.Context, id int) error {
	return s.mutate("Failed to delete feed record", func() error {
		_, err := s.client.DeleteFeedRecord(ctx, id)
		return err
	})
}

// MortalityStore caches mortality records.
type MortalityStore struct {
	*Collection[domain.MortalityRecord]
	client *api.Client
}

func NewMortalityStore(client *api.Client) *MortalityStore {
	s := &MortalityStore{client: client}
	s.Collection = NewCollection("mortality records", func(ctx context.Context) (*domain.Page[domain.MortalityRecord], error) {
		return client.ListMortalityRecords(ctx, 1, 0)
	})
	return s
}

func (s *MortalityStore) Create(ctx context.Context, params domain.MortalityParams) error {
	return s.mutate("Failed to create mortality record", func() error {
		_, err := s.client.CreateMortalityRecord(ctx, params)
		return err
	})
}

func (s *MortalityStore) Delete(ctx context.Context, id int) error {
	return s.mutate("Failed to delete mortality record", func() error {
		_, err := s.client.DeleteMortalityRecord(ctx, id)
		return err
	})
}

// HealthStore caches health and treatment records.
type HealthStore struct {
	*Collection[domain.HealthRecord]
	client *api.Client
}

func NewHealthStore(client *api.Client) *HealthStore {
	s := &HealthStore{client: client}
	s.Collection = NewCollection("health records", func(ctx context.Context) (*domain.Page[domain.HealthRecord], error) {
		return client.ListHealthRecords(ctx, 1, 0)
	})
	return s
}

func (s *HealthStore) Create(ctx context.Context, params domain.HealthParams) error {
	return s.mutate("Failed to create health record", func() error {
		_, err := s.client.CreateHealthRecord(ctx, params)
		return err
	})
}

func (s *HealthStore) Update(ctx context.Context, id int, params domain.HealthParams) error {
	return s.mutate("Failed to update health record", func() error {
		_, err := s.client.UpdateHealthRecord(ctx, id, params)
		return err
	})
}

func (s *HealthStore) Delete(ctx context.Context, id int) error {
	return s.mutate("Failed to delete health record", func() error {
		_, err := s.client.DeleteHealthRecord(ctx, id)
		return err
	})
}
