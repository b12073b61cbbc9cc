package shops

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"intown-api/internal/models"
)

const (
	// DefaultBaseURL is the merchant search API.
	DefaultBaseURL = "https://devapi.intownlocal.com/IN"

	defaultTimeout = 15 * time.Second
	userAgent      = "intown-api/1.0"
)

// Client is an HTTP client for the external merchant search API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithBaseURL sets a custom base URL.
func WithBaseURL(u string) Option {
	return func(client *Client) {
		client.baseURL = u
	}
}

// NewClient creates a merchant API client. The bearer token is optional;
// when empty, requests are sent unauthenticated.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NearbyShops returns shops around the given coordinates, the broad
// query the product search falls back to.
func (c *Client) NearbyShops(ctx context.Context, lat, lon float64) Result {
	query := url.Values{}
	query.Set("customerLatitude", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("customerLongitude", strconv.FormatFloat(lon, 'f', -1, 64))

	return c.search(ctx, "/search/nearby", query)
}

// SearchByProductNames returns shops matching a free-text product query
// near the given coordinates.
func (c *Client) SearchByProductNames(ctx context.Context, productQuery string, lat, lon float64) Result {
	query := url.Values{}
	query.Set("productName", productQuery)
	query.Set("customerLatitude", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("customerLongitude", strconv.FormatFloat(lon, 'f', -1, 64))

	return c.search(ctx, "/search/by-product-names", query)
}

// SearchByCategory returns shops of one category near the given
// coordinates.
func (c *Client) SearchByCategory(ctx context.Context, categoryID string, lat, lon float64) Result {
	query := url.Values{}
	query.Set("categoryId", categoryID)
	query.Set("customerLatitude", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("customerLongitude", strconv.FormatFloat(lon, 'f', -1, 64))

	return c.search(ctx, "/search/by-product-names", query)
}

func (c *Client) search(ctx context.Context, path string, query url.Values) Result {
	body, err := c.get(ctx, path, query)
	if err != nil {
		return Failed(err)
	}

	var raw []rawShop
	if err := json.Unmarshal(body, &raw); err != nil {
		return Failed(fmt.Errorf("shops: failed to decode search response: %w", err))
	}

	normalized := make([]models.Shop, 0, len(raw))
	for _, item := range raw {
		normalized = append(normalized, item.normalize())
	}

	return Ok(normalized)
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("shops: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("shops: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("shops: failed to read response body: %w", err)
	}

	// The API has no documented error schema; non-2xx is the only
	// failure signal.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("shops: unexpected status %d", resp.StatusCode)
	}

	return body, nil
}
