package hackernews

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"hn-radar/httpclient"
)

// DefaultBaseURL is the public Firebase API root of Hacker News.
const DefaultBaseURL = "https://hacker-news.firebaseio.com"

// Client reads the Hacker News Firebase API. Construct it explicitly and
// pass it by reference; there is no package-level instance.
type Client struct {
	base *httpclient.BaseClient
}

// NewClient builds a Client against the given base URL using the shared
// traced http.Client. An empty baseURL means DefaultBaseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		base: httpclient.NewBaseClientWithClient(httpclient.New(httpclient.Config{Timeout: timeout}), baseURL),
	}
}

// NewClientWithHTTPClient builds a Client with a caller-provided
// http.Client. Tests use this to point at an httptest server.
func NewClientWithHTTPClient(baseURL string, hc *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{base: httpclient.NewBaseClientWithClient(hc, baseURL)}
}

// TopStories returns the ranked top-story IDs, truncated to limit when
// limit > 0. The upstream list is ordered; truncation keeps the prefix.
func (c *Client) TopStories(ctx context.Context, limit int) ([]int64, error) {
	body, err := c.get(ctx, "/v0/topstories.json")
	if err != nil {
		return nil, err
	}

	var ids []int64
	if err := json.Unmarshal(body, &ids); err != nil {
		return nil, fmt.Errorf("hackernews: decode topstories: %w", err)
	}

	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

// Item fetches one item by ID. The upstream API answers 200 with a literal
// null body for unknown IDs; that is reported as an error here so the
// aggregator treats it like any other per-item failure.
func (c *Client) Item(ctx context.Context, id int64) (*Item, error) {
	body, err := c.get(ctx, fmt.Sprintf("/v0/item/%d.json", id))
	if err != nil {
		return nil, err
	}

	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return nil, fmt.Errorf("hackernews: item %d not found", id)
	}

	var item Item
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, fmt.Errorf("hackernews: decode item %d: %w", id, err)
	}
	if item.ID == 0 {
		return nil, fmt.Errorf("hackernews: item %d missing id field", id)
	}
	return &item, nil
}

func (c *Client) get(ctx context.Context, relPath string) ([]byte, error) {
	req, err := c.base.NewRequest(ctx, http.MethodGet, relPath, nil, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hackernews: request %s: %w", relPath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hackernews: %s returned status %d", relPath, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("hackernews: read body of %s: %w", relPath, err)
	}
	return body, nil
}
