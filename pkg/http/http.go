package http

import (
	"net/http"
	"time"
)

const (
	// DefaultDelay is the pause charged after every outbound request.
	DefaultDelay = time.Millisecond * 2000
	// MinDelay is the floor for the configurable delay. The scrape targets
	// apply informal rate limits; going faster risks getting blocked.
	MinDelay = time.Millisecond * 2000

	// DefaultUserAgent mimics a browser since the scrape targets reject
	// obvious bot agents.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ThrottledClient wraps an HTTPClient and sleeps for a fixed delay after
// every request before returning. The delay is charged per attempt, not per
// successful response, so callers chaining fallback requests pay once per
// fetch. The client can be used concurrently; the delay is per call.
type ThrottledClient struct {
	client    HTTPClient
	delay     time.Duration
	userAgent string
}

// ClientOption is a function that can be used to configure a ThrottledClient
type ClientOption func(*ThrottledClient)

// NewThrottledClient creates a ThrottledClient honoring a minimum
// inter-request delay
func NewThrottledClient(opts ...ClientOption) *ThrottledClient {
	c := &ThrottledClient{
		client:    http.DefaultClient,
		delay:     DefaultDelay,
		userAgent: DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithDelay sets the inter-request delay, floored at MinDelay
func WithDelay(delay time.Duration) ClientOption {
	return func(c *ThrottledClient) {
		if delay < MinDelay {
			delay = MinDelay
		}
		c.delay = delay
	}
}

// WithUserAgent sets the User-Agent header applied to every request
func WithUserAgent(userAgent string) ClientOption {
	return func(c *ThrottledClient) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient sets the http client to use for the client
func WithHTTPClient(client HTTPClient) ClientOption {
	return func(c *ThrottledClient) {
		c.client = client
	}
}

// Delay reports the configured inter-request delay.
func (c *ThrottledClient) Delay() time.Duration {
	return c.delay
}

// Do executes the HTTP request and then blocks for the configured delay
// before returning, regardless of the outcome. Cancelling the request
// context cuts the wait short.
func (c *ThrottledClient) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)

	timer := time.NewTimer(c.delay)
	defer timer.Stop()
	select {
	case <-req.Context().Done():
	case <-timer.C:
	}

	return resp, err
}
