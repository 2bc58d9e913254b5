package userapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultEndpoint is the user collection endpoint used when none is configured.
const DefaultEndpoint = "https://api.github.com/users"

// maxResponseSize caps how much of the response body is decoded.
const maxResponseSize = 4 << 20

// Client fetches user records from a collection endpoint.
// Zero value is not usable; use NewClient to create instances.
type Client struct {
	// httpClient is reused across requests for connection pooling
	httpClient *http.Client
	endpoint   string
}

// NewClient creates a user API client.
// Defaults: DefaultEndpoint, a pooled HTTP client with a 30s timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchUsers performs one GET against the configured endpoint and decodes
// the JSON array it returns. Records with missing optional fields are
// still valid. Exactly one request is issued per call.
func (c *Client) FetchUsers(ctx context.Context) ([]User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	var users []User
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&users); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}

	return users, nil
}
