package atlassian

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"log/slog"

	"github.com/MahithChigurupati/Confluence-MCP-Server/internal/auth"
)

// requestTimeout applies uniformly to every outbound call. There is no
// per-operation override.
const requestTimeout = 30 * time.Second

// Client is a helper around the Confluence REST API. It holds no state
// beyond the base URL and credentials, so concurrent calls need no
// coordination.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient constructs a Client for the specified base URL and credentials.
func NewClient(base, username, apiToken string, logger *slog.Logger) (*Client, error) {
	if base == "" {
		return nil, fmt.Errorf("atlassian: base URL required")
	}

	parsed, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("atlassian: parse base url: %w", err)
	}

	transport := auth.NewTransport(nil, username, apiToken)
	httpClient := &http.Client{
		Timeout:   requestTimeout,
		Transport: transport,
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    parsed,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// NewRequest builds a GET request with optional query parameters.
func (c *Client) NewRequest(ctx context.Context, path string, query map[string]string) (*http.Request, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	u := *c.baseURL
	u.Path = strings.TrimRight(c.baseURL.Path, "/") + path

	if len(query) > 0 {
		q := u.Query()
		for k, v := range query {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	return req, nil
}

// Do executes the request and decodes the response JSON into out if provided.
// Non-2xx responses become a typed *Error carrying the upstream status code;
// transport failures are returned as-is. Nothing is retried.
func (c *Client) Do(req *http.Request, out any) error {
	c.logger.Debug("confluence request", slog.String("path", req.URL.Path))

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return parseError(res)
	}

	if out == nil {
		io.Copy(io.Discard, res.Body)
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("atlassian: decode response: %w", err)
	}

	return nil
}

// Get builds and executes a GET request in one step.
func (c *Client) Get(ctx context.Context, path string, query map[string]string, out any) error {
	req, err := c.NewRequest(ctx, path, query)
	if err != nil {
		return err
	}
	return c.Do(req, out)
}

// SetTransport overrides the underlying HTTP transport. Useful for testing.
func (c *Client) SetTransport(rt http.RoundTripper) {
	if rt == nil {
		return
	}
	c.httpClient.Transport = rt
}
