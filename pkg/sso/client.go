package sso

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// Result is the verdict of the remote SSO service.
type Result struct {
	Authenticated bool     `json:"authenticated"`
	Roles         []string `json:"roles"`
}

// Client calls the external SSO service.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The client is
// copied, so the configured timeout never leaks back into the caller's
// instance.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			hcCopy := *hc
			c.httpClient = &hcCopy
		}
	}
}

// WithLogger sets a custom logger for the client.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates an SSO client for the configured endpoint.
func NewClient(cfg Config, opts ...ClientOption) *Client {
	c := &Client{
		url:        cfg.URL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient.Timeout == 0 {
		c.httpClient.Timeout = cfg.Timeout
	}

	return c
}

// Authenticate verifies the credentials against the remote service.
//
// An explicit "authenticated": false verdict and HTTP 401 both yield a
// non-authenticated Result with a nil error; transport failures and
// unexpected statuses yield ErrServiceUnavailable; undecodable responses
// yield ErrUnexpected.
func (c *Client) Authenticate(ctx context.Context, username, password string) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, nil)
	if err != nil {
		return Result{}, errors.Join(ErrUnexpected, err)
	}
	req.SetBasicAuth(username, password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "sso service unreachable", "error", err)
		return Result{}, errors.Join(ErrServiceUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.logger.InfoContext(ctx, "sso rejected credentials", "username", username)
		return Result{Authenticated: false}, nil
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.logger.ErrorContext(ctx, "sso service returned unexpected status", "status", resp.StatusCode)
		return Result{}, fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.logger.ErrorContext(ctx, "failed to decode sso response", "error", err)
		return Result{}, errors.Join(ErrUnexpected, err)
	}

	return result, nil
}
