// Package notion is a minimal client for the Notion REST API covering the
// surface the audit needs: data-source discovery, database queries and block
// children. It prefers the current data-source API and falls back to the
// legacy database endpoints when a workspace predates them.
package notion

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "https://api.notion.com/v1"

	// versionCurrent supports data sources; versionLegacy is the last
	// version where /databases/{id}/query answers directly.
	versionCurrent = "2025-09-03"
	versionLegacy  = "2022-06-28"

	maxRetries = 3
	retryDelay = time.Second

	// blockFetchTimeout bounds each per-page content fetch. Expiry is
	// treated like any other fetch failure by the caller.
	blockFetchTimeout = 10 * time.Second
)

// HTTPClient is the transport interface, satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ResponseCache stores raw response bodies keyed by request hash. Implemented
// by cache.Cache; nil disables caching.
type ResponseCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, body []byte) error
}

// Client talks to the Notion API on behalf of one integration token.
type Client struct {
	token      string
	baseURL    string
	httpClient HTTPClient
	cache      ResponseCache
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom transport.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithBaseURL overrides the API base URL (used by tests).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) { c.baseURL = url }
}

// WithCache attaches a response cache.
func WithCache(cache ResponseCache) ClientOption {
	return func(c *Client) { c.cache = cache }
}

// WithLogger sets the client logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a Client. An empty token falls back to the NOTION_TOKEN
// environment variable.
func NewClient(token string, opts ...ClientOption) (*Client, error) {
	if token == "" {
		token = os.Getenv("NOTION_TOKEN")
	}
	if token == "" {
		return nil, fmt.Errorf("notion token not set: pass --token or set NOTION_TOKEN")
	}

	client := &Client{
		token:      token,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// listEnvelope is the shared pagination wrapper of list-shaped responses.
type listEnvelope struct {
	Results    []json.RawMessage `json:"results"`
	HasMore    bool              `json:"has_more"`
	NextCursor *string           `json:"next_cursor"`
}

// do performs one API request with retry on transient failures, returning the
// response body. Successful bodies are served from and written to the cache
// when one is attached.
func (c *Client) do(ctx context.Context, method, path, version string, body []byte) ([]byte, error) {
	cacheKey := requestKey(method, c.baseURL+path, version, body)
	if c.cache != nil {
		if cached, ok := c.cache.Get(cacheKey); ok {
			return cached, nil
		}
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(retryDelay * time.Duration(attempt)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Notion-Version", version)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			if seconds, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil {
				select {
				case <-time.After(time.Duration(seconds) * time.Second):
				case <-ctx.Done():
					return nil, ctx.Err()
				}
			}
			lastErr = fmt.Errorf("rate limited: %d", resp.StatusCode)
			continue
		}
		if resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
			continue
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
		}

		if c.cache != nil {
			if err := c.cache.Set(cacheKey, respBody); err != nil {
				c.logger.Warn("failed to cache response", "path", path, "error", err)
			}
		}
		return respBody, nil
	}
	return nil, fmt.Errorf("request failed after %d attempts: %w", maxRetries, lastErr)
}

// requestKey hashes the parts of a request that determine its response.
func requestKey(method, url, version string, body []byte) string {
	h := sha256.New()
	h.Write([]byte(method))
	h.Write([]byte{0})
	h.Write([]byte(url))
	h.Write([]byte{0})
	h.Write([]byte(version))
	h.Write([]byte{0})
	h.Write(body)
	return fmt.Sprintf("%x", h.Sum(nil))
}
