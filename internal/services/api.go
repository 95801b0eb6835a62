// Base HTTP client for the filmplane API
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/filmplane/filmplane/internal/shared"
)

// Client provides JSON request plumbing shared by all API services.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client. The base URL defaults to the local
// development server; the HTTP client defaults to [http.DefaultClient].
func NewClient(baseURL string, client *http.Client) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8000/"
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// do performs a JSON request against the API.
//
// body, when non-nil, is marshaled as the JSON request body; result, when
// non-nil, receives the decoded response. A 401 response maps to
// [shared.ErrNotAuthenticated], any other non-2xx to [shared.ErrAPIRequest].
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, result any) error {
	fullURL := c.baseURL + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: status %d", shared.ErrNotAuthenticated, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d, body: %s", shared.ErrAPIRequest, resp.StatusCode, string(data))
	}

	if result != nil && len(data) > 0 {
		if err := json.Unmarshal(data, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// get performs a GET request.
func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, result)
}

// post performs a POST request with a JSON body.
func (c *Client) post(ctx context.Context, path string, query url.Values, body any, result any) error {
	return c.do(ctx, http.MethodPost, path, query, body, result)
}

// put performs a PUT request with a JSON body.
func (c *Client) put(ctx context.Context, path string, body any, result any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, result)
}

// delete performs a DELETE request carrying a JSON body, which the filmplane
// API uses for removal filters.
func (c *Client) delete(ctx context.Context, path string, body any, result any) error {
	return c.do(ctx, http.MethodDelete, path, nil, body, result)
}
