package api

import (
	"context"
	"fmt"
	"net/url"

	"poultry360/internal/domain"
)

// DashboardOverview fetches the aggregate counts for the dashboard header.
func (c *Client) DashboardOverview(ctx context.Context) (*domain.DashboardOverview, error) {
	var resp domain.DashboardOverview
	if err := c.get(ctx, "/dashboard/overview", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RecentActivities fetches the most recent activity feed entries.
func (c *Client) RecentActivities(ctx context.Context, limit int) ([]domain.Activity, error) {
	if limit <= 0 {
		limit = 10
	}
	q := url.Values{}
	q.Set("limit", fmt.Sprintf("%d", limit))

	var resp struct {
		Data []domain.Activity `json:"data"`
	}
	if err := c.get(ctx, "/activities/recent", q, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// ProductionPerformance fetches the ranked per-batch performance list for the
// given period (e.g. "30days").
func (c *Client) ProductionPerformance(ctx context.Context, period string) ([]domain.ProductionPerformance, error) {
	if period == "" {
		period = "30days"
	}
	q := url.Values{}
	q.Set("period", period)

	var resp struct {
		Data []domain.ProductionPerformance `json:"data"`
	}
	if err := c.get(ctx, "/analytics/production-performance", q, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
