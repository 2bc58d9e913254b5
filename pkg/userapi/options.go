package userapi

import (
	"net/http"
	"time"
)

// Option configures the client.
type Option func(*Client)

// WithEndpoint sets the user collection URL.
func WithEndpoint(endpoint string) Option {
	if endpoint == "" {
		panic("WithEndpoint: endpoint cannot be empty")
	}
	return func(c *Client) { c.endpoint = endpoint }
}

// WithHTTPClient replaces the underlying HTTP client.
// Useful for custom transports or testing. Nil clients are ignored.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the per-request timeout on the underlying client.
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithTimeout: duration must be > 0")
	}
	return func(c *Client) { c.httpClient.Timeout = d }
}
