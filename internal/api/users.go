package api

import (
	"context"
	"fmt"

	"poultry360/internal/domain"
)

// ListUsers returns one page of users. Requires an admin credential.
func (c *Client) ListUsers(ctx context.Context, page, limit int) (*domain.Page[domain.User], error) {
	var resp domain.Page[domain.User]
	if err := c.get(ctx, "/users", pageQuery(page, limit), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateUser creates a user account within the caller's organization.
func (c *Client) CreateUser(ctx context.Context, params domain.UserParams) (*domain.User, error) {
	var resp domain.User
	if err := c.post(ctx, "/users", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateUser updates a user record.
func (c *Client) UpdateUser(ctx context.Context, id int, params domain.UserParams) (*domain.User, error) {
	var resp domain.User
	if err := c.put(ctx, fmt.Sprintf("/users/%d", id), params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteUser removes a user record.
func (c *Client) DeleteUser(ctx context.Context, id int) (*domain.Ack, error) {
	var resp domain.Ack
	if err := c.delete(ctx, fmt.Sprintf("/users/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
