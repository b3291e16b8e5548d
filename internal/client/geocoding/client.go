// Package geocoding resolves free-text addresses to coordinates through a
// Nominatim-style public search endpoint.
package geocoding

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	httpclient "logistics-api/internal/client/http"
	"logistics-api/internal/logger"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrAddressNotFound is returned when an address cannot be resolved to
// coordinates. Lookup failures and empty results collapse into this one
// error because the caller's remediation is the same either way: ask the
// user to correct the address and retry.
var ErrAddressNotFound = errors.New("address not found")

// DefaultBaseURL is the public Nominatim search endpoint.
const DefaultBaseURL = "https://nominatim.openstreetmap.org"

const minAddressLength = 3

// Coordinates is a geocoded point in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is the best match for an address query.
type Location struct {
	Coordinates
	DisplayName string `json:"display_name"`
}

// Client queries the geocoding provider, with an optional Redis cache in
// front of it so repeated lookups of the same address skip the network.
type Client struct {
	http     *httpclient.HTTPClient
	redis    *redis.Client
	cacheTTL time.Duration
}

// NewClient creates a geocoding client. rdb may be nil to disable caching.
func NewClient(baseURL string, rdb *redis.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http: httpclient.NewHTTPClient(
			httpclient.WithBaseURL(baseURL),
			httpclient.WithTimeout(10*time.Second),
			// A failed lookup surfaces to the user immediately; they fix
			// the address and retry, so retrying here only adds latency.
			httpclient.WithRetryConfig(nil),
			httpclient.WithDefaultHeader("User-Agent", "logistics-api/1.0"),
		),
		redis:    rdb,
		cacheTTL: 24 * time.Hour,
	}
}

// searchResult mirrors the provider's response; coordinates arrive as strings.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves address to its single best match. Addresses shorter than
// three characters are rejected before any network call.
func (c *Client) Geocode(ctx context.Context, address string) (*Location, error) {
	address = strings.TrimSpace(address)
	if utf8.RuneCountInString(address) < minAddressLength {
		return nil, ErrAddressNotFound
	}

	if loc := c.cacheGet(ctx, address); loc != nil {
		return loc, nil
	}

	resp, err := c.http.Get(ctx, "/search",
		httpclient.WithQueryParam("q", address),
		httpclient.WithQueryParam("format", "json"),
		httpclient.WithQueryParam("limit", "1"),
	)
	if err != nil {
		logger.Warn("geocoding request failed", zap.String("address", address), zap.Error(err))
		return nil, ErrAddressNotFound
	}

	var results []searchResult
	if err := httpclient.DecodeJSON(resp, &results); err != nil {
		logger.Warn("geocoding response invalid", zap.String("address", address), zap.Error(err))
		return nil, ErrAddressNotFound
	}
	if len(results) == 0 {
		return nil, ErrAddressNotFound
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		return nil, ErrAddressNotFound
	}

	loc := &Location{
		Coordinates: Coordinates{Latitude: lat, Longitude: lon},
		DisplayName: results[0].DisplayName,
	}
	c.cacheSet(ctx, address, loc)
	return loc, nil
}

func cacheKey(address string) string {
	return "geocode:" + strings.ToLower(address)
}

func (c *Client) cacheGet(ctx context.Context, address string) *Location {
	if c.redis == nil {
		return nil
	}
	payload, err := c.redis.Get(ctx, cacheKey(address)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Debug("geocode cache read failed", zap.Error(err))
		}
		return nil
	}
	var loc Location
	if err := json.Unmarshal(payload, &loc); err != nil {
		return nil
	}
	return &loc
}

func (c *Client) cacheSet(ctx context.Context, address string, loc *Location) {
	if c.redis == nil {
		return
	}
	payload, err := json.Marshal(loc)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, cacheKey(address), payload, c.cacheTTL).Err(); err != nil {
		logger.Debug("geocode cache write failed", zap.Error(err))
	}
}
