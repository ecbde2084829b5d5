package api

import (
	"context"
	"fmt"

	"poultry360/internal/domain"
)

// ListFarms returns one page of farms.
func (c *Client) ListFarms(ctx context.Context, page, limit int) (*domain.Page[domain.Farm], error) {
	var resp domain.Page[domain.Farm]
	if err := c.get(ctx, "/farms", pageQuery(page, limit), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetFarm returns a single farm by id.
func (c *Client) GetFarm(ctx context.Context, id int) (*domain.Farm, error) {
	var resp domain.Farm
	if err := c.get(ctx, fmt.Sprintf("/farms/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateFarm creates a farm and returns the server-assigned record.
func (c *Client) CreateFarm(ctx context.Context, params domain.FarmParams) (*domain.Farm, error) {
	var resp domain.Farm
	if err := c.post(ctx, "/farms", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateFarm updates a farm and returns the updated record.
func (c *Client) UpdateFarm(ctx context.Context, id int, params domain.FarmParams) (*domain.Farm, error) {
	var resp domain.Farm
	if err := c.put(ctx, fmt.Sprintf("/farms/%d", id), params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteFarm removes a farm.
func (c *Client) DeleteFarm(ctx context.Context, id int) (*domain.Ack, error) {
	var resp domain.Ack
	if err := c.delete(ctx, fmt.Sprintf("/farms/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
