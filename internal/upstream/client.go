// Package upstream contains the HTTP clients for the backend services: the
// main credits API and the cedulones (voucher) API. All business logic lives
// behind these endpoints; this service only orchestrates them.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client is a thin JSON client bound to one base URL.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// getJSON performs a GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.doJSON(ctx, http.MethodGet, path, query, nil, out)
}

// sendJSON performs a method with a JSON body and decodes the response into
// out when out is non-nil.
func (c *Client) sendJSON(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	return c.doJSON(ctx, method, path, query, body, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.logger.Warn("upstream returned non-2xx",
			zap.String("method", method),
			zap.String("url", u),
			zap.Int("status", resp.StatusCode))
		return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
