// Package http wraps hashicorp/go-retryablehttp with the small GET-oriented
// surface the dispatcher needs: query encoding, failure mapping, and optional
// debug logging. Retries are disabled unless configured, so transient
// failures propagate immediately.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/surveygizmo/internal/constants"
	"github.com/fivetwenty-io/surveygizmo/pkg/surveygizmo"
)

const defaultUserAgent = "surveygizmo-go-client/1.0"

// Response represents an HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the HTTP transport used for API calls.
type Client struct {
	client    *retryablehttp.Client
	userAgent string
	logger    surveygizmo.Logger
	debug     bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger surveygizmo.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging when a logger is set.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout bounds each request including retries.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.client.HTTPClient.Timeout = timeout
		}
	}
}

// WithRetryConfig enables retries for transient failures.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.client.RetryMax = retryMax

		if waitMin > 0 {
			c.client.RetryWaitMin = waitMin
		}

		if waitMax > 0 {
			c.client.RetryWaitMax = waitMax
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client. Used to route calls
// through an OAuth1-signed session while keeping the retry and logging
// behavior of this wrapper.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			timeout := c.client.HTTPClient.Timeout
			if httpClient.Timeout == 0 {
				httpClient.Timeout = timeout
			}

			c.client.HTTPClient = httpClient
		}
	}
}

// NewClient creates a transport with retries disabled.
func NewClient(opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	// Once retries are exhausted the final response must still reach the
	// status mapping below instead of being swallowed by a "giving up" error.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		client:    retryClient,
		userAgent: defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Get performs a GET against an absolute URL with the given query parameters.
// Non-2xx responses are returned as *surveygizmo.APIError when the body
// parses as an error envelope, or *surveygizmo.HTTPError otherwise.
func (c *Client) Get(ctx context.Context, rawurl string, query url.Values) (*Response, error) {
	fullURL := rawurl
	if len(query) > 0 {
		fullURL = rawurl + "?" + query.Encode()
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	if c.debug && c.logger != nil {
		c.logger.Debug("API Request", map[string]interface{}{
			"method": http.MethodGet,
			"url":    rawurl,
		})
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("API Response", map[string]interface{}{
			"url":         rawurl,
			"status_code": resp.StatusCode,
		})
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if apiErr := surveygizmo.ParseAPIError(resp.StatusCode, body); apiErr != nil {
			return nil, apiErr
		}

		return nil, &surveygizmo.HTTPError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}, nil
}
