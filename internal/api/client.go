// Package api implements the HTTP client for the poultry360 remote API.
// Every remote call passes through a single Client which attaches the bearer
// credential, decodes the error envelope once at the boundary, and reacts to
// session expiry: any 401 erases the persisted credential and fires the
// configured unauthorized hook before the error propagates to the caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"poultry360/internal/domain"
	"poultry360/internal/logging"
)

// DefaultTimeout bounds every request. A request that has not completed by
// then fails with a NetworkError, distinct from any server-returned status.
const DefaultTimeout = 15 * time.Second

// Credentials supplies the bearer token for outgoing requests and persists
// the authenticated identity. The session layer owns the implementation; the
// client only reads it per-request — and erases it on a 401, the one
// sanctioned shared mutation of session state outside the session manager.
type Credentials interface {
	Token() string
	Save(token string, identity *domain.User) error
	Clear() error
}

// Config configures a Client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Creds   Credentials
	// OnUnauthorized runs after a 401 has cleared the stored credential.
	// The command layer uses it to route the user back to login.
	OnUnauthorized func()
}

// Client is the single object all remote calls go through.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	creds          Credentials
	onUnauthorized func()
}

// New creates a Client from cfg. Timeout defaults to DefaultTimeout.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:     &http.Client{Timeout: timeout},
		creds:          cfg.Creds,
		onUnauthorized: cfg.OnUnauthorized,
	}
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string { return c.baseURL }

// do performs one request/response cycle. body (if non-nil) is JSON-encoded;
// out (if non-nil) receives the decoded 2xx response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	if c.creds != nil {
		if token := c.creds.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	logging.APIDebug("[%s] %s %s", requestID, method, fullURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.APIError("[%s] transport failure: %v", requestID, err)
		return &NetworkError{URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{URL: fullURL, Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Credential expired or invalid. Erase persisted session state and
		// notify, regardless of whether the caller handles the error.
		c.forceLogout()
		return &APIError{StatusCode: resp.StatusCode, Message: decodeMessage(respBody)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logging.APIError("[%s] status %d: %s", requestID, resp.StatusCode, respBody)
		return &APIError{StatusCode: resp.StatusCode, Message: decodeMessage(respBody)}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

func (c *Client) forceLogout() {
	if c.creds != nil {
		if err := c.creds.Clear(); err != nil {
			logging.APIError("failed to clear credentials after 401: %v", err)
		}
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
	logging.API("session rejected by server, credentials cleared")
}

func decodeMessage(body []byte) string {
	var env apiEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return env.text()
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

// pageQuery builds the standard page/limit query all list endpoints accept.
func pageQuery(page, limit int) url.Values {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	q := url.Values{}
	q.Set("page", fmt.Sprintf("%d", page))
	q.Set("limit", fmt.Sprintf("%d", limit))
	return q
}

// IsTimeout reports whether err is a request timeout.
func IsTimeout(err error) bool {
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		return false
	}
	return errors.Is(netErr.Err, context.DeadlineExceeded) || isTransportTimeout(netErr.Err)
}

func isTransportTimeout(err error) bool {
	type timeout interface{ Timeout() bool }
	for err != nil {
		if t, ok := err.(timeout); ok && t.Timeout() {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}
