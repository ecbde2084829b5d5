package api

import (
	"context"

	"poultry360/internal/domain"
	"poultry360/internal/logging"
)

type loginRequest struct {
	Username         string `json:"username"`
	Password         string `json:"password"`
	OrganizationSlug string `json:"organizationSlug,omitempty"`
}

// Login exchanges credentials for a bearer token and identity. On success the
// token and identity are persisted through the credential store before the
// response is returned, so a reload finds the session already on disk.
func (c *Client) Login(ctx context.Context, username, password, orgSlug string) (*domain.AuthResponse, error) {
	if username == "" {
		return nil, &ValidationError{Field: "username", Reason: "required"}
	}
	if password == "" {
		return nil, &ValidationError{Field: "password", Reason: "required"}
	}

	var resp domain.AuthResponse
	req := loginRequest{Username: username, Password: password, OrganizationSlug: orgSlug}
	if err := c.post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}

	if resp.Token != "" && c.creds != nil {
		if err := c.creds.Save(resp.Token, resp.User); err != nil {
			logging.APIError("failed to persist credentials: %v", err)
		}
	}
	return &resp, nil
}

// Register creates an account. It deliberately does not persist the token or
// authenticate the caller; the application drives the login flow explicitly.
func (c *Client) Register(ctx context.Context, params domain.RegisterParams) (*domain.AuthResponse, error) {
	if params.Username == "" {
		return nil, &ValidationError{Field: "username", Reason: "required"}
	}
	if params.Password == "" {
		return nil, &ValidationError{Field: "password", Reason: "required"}
	}
	if params.Email == "" {
		return nil, &ValidationError{Field: "email", Reason: "required"}
	}

	var resp domain.AuthResponse
	if err := c.post(ctx, "/auth/register", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyToken validates the stored credential and returns the identity.
func (c *Client) VerifyToken(ctx context.Context) (*domain.VerifyResponse, error) {
	var resp domain.VerifyResponse
	if err := c.get(ctx, "/auth/verify", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type profileResponse struct {
	User *domain.User `json:"user"`
}

// GetProfile fetches the current identity.
func (c *Client) GetProfile(ctx context.Context) (*domain.User, error) {
	var resp profileResponse
	if err := c.get(ctx, "/auth/profile", nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// UpdateProfile updates identity fields and returns the updated record.
func (c *Client) UpdateProfile(ctx context.Context, params domain.UserParams) (*domain.User, error) {
	var resp profileResponse
	if err := c.put(ctx, "/auth/profile", params, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}
