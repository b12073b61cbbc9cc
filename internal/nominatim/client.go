package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"intown-api/internal/models"
)

const (
	// DefaultBaseURL is the public OpenStreetMap Nominatim endpoint.
	DefaultBaseURL = "https://nominatim.openstreetmap.org"

	// Nominatim's usage policy requires an identifying User-Agent.
	userAgent = "intown-api/1.0"

	defaultTimeout = 10 * time.Second

	// Forward search results are capped at five candidates.
	searchLimit = 5

	// MinQueryLength is the shortest query that triggers a request.
	MinQueryLength = 3
)

// Client is an HTTP client for the Nominatim geocoding API.
type Client struct {
	baseURL     string
	countryCode string
	httpClient  *http.Client
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

// WithCountryCode restricts forward searches to one country.
func WithCountryCode(code string) Option {
	return func(client *Client) {
		client.countryCode = code
	}
}

// NewClient creates a new Nominatim client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:     DefaultBaseURL,
		countryCode: "in",
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type address struct {
	Suburb        string `json:"suburb"`
	Neighbourhood string `json:"neighbourhood"`
	Village       string `json:"village"`
	Town          string `json:"town"`
	City          string `json:"city"`
	County        string `json:"county"`
	State         string `json:"state"`
	Postcode      string `json:"postcode"`
	Country       string `json:"country"`
	Road          string `json:"road"`
}

type reverseResponse struct {
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Address     address `json:"address"`
}

type searchResponse struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// ReverseGeocode converts a coordinate pair into a LocationDetails record.
// It never fails: on any transport, status, or parse error the default
// city's textual fields are returned merged with the requested
// coordinates. The returned latitude and longitude always equal the input.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) models.LocationDetails {
	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("addressdetails", "1")

	var resp reverseResponse
	if err := c.get(ctx, "/reverse", query, &resp); err != nil {
		log.Warn().Err(err).Float64("lat", lat).Float64("lon", lon).
			Msg("reverse geocoding failed, using fallback location")
		return models.DefaultLocation(lat, lon)
	}

	area := firstNonEmpty(
		resp.Address.Suburb,
		resp.Address.Neighbourhood,
		resp.Address.Village,
		resp.Address.Town,
	)
	city := firstNonEmpty(
		resp.Address.City,
		resp.Address.Town,
		resp.Address.Village,
		resp.Address.County,
	)
	country := resp.Address.Country
	if country == "" {
		country = models.DefaultCountry
	}

	return models.LocationDetails{
		Latitude:  lat,
		Longitude: lon,
		Area:      area,
		City:      city,
		State:     resp.Address.State,
		Country:   country,
		Pincode:   resp.Address.Postcode,
		FullAddress: joinParts(
			resp.Name,
			resp.Address.Road,
			area,
			city,
			resp.Address.State,
			resp.Address.Postcode,
			country,
		),
	}
}

// Search returns up to five candidate places for a free-text query,
// keeping the provider's relevance order. Queries shorter than three
// characters return an empty list without issuing a request.
func (c *Client) Search(ctx context.Context, text string) ([]models.LocationSearchResult, error) {
	text = strings.TrimSpace(text)
	if len(text) < MinQueryLength {
		return []models.LocationSearchResult{}, nil
	}

	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("q", text)
	query.Set("countrycodes", c.countryCode)
	query.Set("limit", strconv.Itoa(searchLimit))

	var resp []searchResponse
	if err := c.get(ctx, "/search", query, &resp); err != nil {
		return nil, fmt.Errorf("nominatim: search failed: %w", err)
	}

	results := make([]models.LocationSearchResult, 0, len(resp))
	for _, item := range resp {
		lat, err := strconv.ParseFloat(item.Lat, 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(item.Lon, 64)
		if err != nil {
			continue
		}

		name, _, _ := strings.Cut(item.DisplayName, ",")
		results = append(results, models.LocationSearchResult{
			Name:        strings.TrimSpace(name),
			FullAddress: item.DisplayName,
			Latitude:    lat,
			Longitude:   lon,
		})
	}

	return results, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func joinParts(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}
