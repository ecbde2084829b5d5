package api

import (
	"context"
	"fmt"

	"poultry360/internal/domain"
)

// ListBatches returns one page of flocks.
func (c *Client) ListBatches(ctx context.Context, page, limit int) (*domain.Page[domain.Batch], error) {
	var resp domain.Page[domain.Batch]
	if err := c.get(ctx, "/flocks", pageQuery(page, limit), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetBatch returns a single flock by id.
func (c *Client) GetBatch(ctx context.Context, id int) (*domain.Batch, error) {
	var resp domain.Batch
	if err := c.get(ctx, fmt.Sprintf("/flocks/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateBatch creates a flock and returns the server-assigned record.
func (c *Client) CreateBatch(ctx context.Context, params domain.BatchParams) (*domain.Batch, error) {
	var resp domain.Batch
	if err := c.post(ctx, "/flocks", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateBatch updates a flock and returns the updated record.
func (c *Client) UpdateBatch(ctx context.Context, id int, params domain.BatchParams) (*domain.Batch, error) {
	var resp domain.Batch
	if err := c.put(ctx, fmt.Sprintf("/flocks/%d", id), params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteBatch removes a flock.
func (c *Client) DeleteBatch(ctx context.Context, id int) (*domain.Ack, error) {
	var resp domain.Ack
	if err := c.delete(ctx, fmt.Sprintf("/flocks/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
