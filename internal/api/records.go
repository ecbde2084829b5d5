package api

import (
	"context"
	"fmt"

	"poultry360/internal/domain"
)

// Production records

func (c *Client) ListProductionRecords(ctx context.Context, page, limit int) (*domain.Page[domain.ProductionRecord], error) {
	var resp domain.Page[domain.ProductionRecord]
	if err := c.get(ctx, "/production-records", pageQuery(page, limit), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateProductionRecord(ctx context.Context, params domain.ProductionParams) (*domain.ProductionRecord, error) {
	var resp domain.ProductionRecord
	if err := c.post(ctx, "/production-records", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateProductionRecord(ctx context.Context, id int, params domain.ProductionParams) (*domain.ProductionRecord, error) {
	var resp domain.ProductionRecord
	if err := c.put(ctx, fmt.Sprintf("/production-records/%d", id), params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteProductionRecord(ctx context.Context, id int) (*domain.Ack, error) {
	var resp domain.Ack
	if err := c.delete(ctx, fmt.Sprintf("/production-records/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Feed records

func (c *Client) ListFeedRecords(ctx context.Context, page, limit int) (*domain.Page[domain.FeedRecord], error) {
	var resp domain.Page[domain.FeedRecord]
	if err := c.get(ctx, "/feed-records", pageQuery(page, limit), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateFeedRecord(ctx context.Context, params domain.FeedParams) (*domain.FeedRecord, error) {
	var resp domain.FeedRecord
	if err := c.post(ctx, "/feed-records", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteFeedRecord(ctx context.Context, id int) (*domain.Ack, error) {
	var resp domain.Ack
	if err := c.delete(ctx, fmt.Sprintf("/feed-records/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Mortality records

func (c *Client) ListMortalityRecords(ctx context.Context, page, limit int) (*domain.Page[domain.MortalityRecord], error) {
	var resp domain.Page[domain.MortalityRecord]
	if err := c.get(ctx, "/mortality-records", pageQuery(page, limit), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateMortalityRecord(ctx context.Context, params domain.MortalityParams) (*domain.MortalityRecord, error) {
	var resp domain.MortalityRecord
	if err := c.post(ctx, "/mortality-records", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteMortalityRecord(ctx context.Context, id int) (*domain.Ack, error) {
	var resp domain.Ack
	if err := c.delete(ctx, fmt.Sprintf("/mortality-records/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health records

func (c *Client) ListHealthRecords(ctx context.Context, page, limit int) (*domain.Page[domain.HealthRecord], error) {
	var resp domain.Page[domain.HealthRecord]
	if err := c.get(ctx, "/health-records", pageQuery(page, limit), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateHealthRecord(ctx context.Context, params domain.HealthParams) (*domain.HealthRecord, error) {
	var resp domain.HealthRecord
	if err := c.post(ctx, "/health-records", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateHealthRecord(ctx context.Context, id int, params domain.HealthParams) (*domain.HealthRecord, error) {
	var resp domain.HealthRecord
	if err := c.put(ctx, fmt.Sprintf("/health-records/%d", id), params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteHealthRecord(ctx context.Context, id int) (*domain.Ack, error) {
	var resp domain.Ack
	if err := c.delete(ctx, fmt.Sprintf("/health-records/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
