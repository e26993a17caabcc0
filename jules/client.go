package jules

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the production Jules API endpoint.
const DefaultBaseURL = "https://jules.googleapis.com/v1alpha/"

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// maxResponseSize limits response body reads to prevent memory exhaustion.
const maxResponseSize = 10 * 1024 * 1024 // 10MB

// apiKeyHeader carries the caller's credential on every request.
const apiKeyHeader = "X-Goog-Api-Key"

// Client is a typed client for the Jules API. It covers sessions,
// activities, and sources, with pagination handled either page by page
// (List* methods) or transparently (Stream* methods and Pagers).
//
// A Client is immutable after construction and safe for concurrent use.
// Independent calls and streams share nothing but the credential and
// endpoint configuration.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	userAgent  string
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Useful for testing and for
// preview API versions.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient supplies a custom HTTP client. Timeouts, proxies, and
// transport-level concerns belong to this client; juleskit adds none of
// its own on top.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the request timeout on the default HTTP client.
// Ignored when WithHTTPClient is also given.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if c.httpClient != nil {
			return
		}
		c.httpClient = &http.Client{Timeout: d}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithLogger sets the logger for request-level debug logging.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a Jules API client. The API key comes from
// jules.google.com/settings.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if !strings.HasSuffix(c.baseURL, "/") {
		c.baseURL += "/"
	}
	return c
}

// do performs a single request/response round trip: it joins path onto the
// base URL, attaches the credential and JSON headers, executes exactly one
// network attempt, and returns the raw status and body. It never retries;
// retry policy belongs to the caller.
//
// Resource names arrive in path as opaque strings (sessions/{id},
// sessions/{id}/activities/{id}); do only joins them, it never parses them.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body any) (int, []byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, &Error{Op: op, Kind: KindDecode, Err: fmt.Errorf("encode request: %w", err)}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return 0, nil, &Error{Op: op, Kind: KindTransport, Err: fmt.Errorf("build request: %w", err)}
	}

	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &Error{Op: op, Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return 0, nil, &Error{Op: op, Kind: KindTransport, Err: fmt.Errorf("read response: %w", err)}
	}

	c.logger.Debug("jules request",
		slog.String("op", op),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	return resp.StatusCode, raw, nil
}

// call runs a full operation: dispatch the request and decode the typed
// result.
func call[T any](ctx context.Context, c *Client, op, method, path string, query url.Values, body any) (*T, error) {
	status, raw, err := c.do(ctx, op, method, path, query, body)
	if err != nil {
		return nil, err
	}
	return decode[T](op, status, raw)
}

// ListOptions controls pagination for List calls.
type ListOptions struct {
	// PageSize is the maximum number of items per page (1-100, server
	// default 30). 0 uses the server default.
	PageSize int

	// PageToken resumes listing from a previous response's NextPageToken.
	PageToken string
}

// values encodes the options as query parameters using the API's wire
// names (pageSize, pageToken).
func (o *ListOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.PageSize > 0 {
		q.Set("pageSize", fmt.Sprint(o.PageSize))
	}
	if o.PageToken != "" {
		q.Set("pageToken", o.PageToken)
	}
	return q
}
