// Package discovery is a typed client for the upstream discovery API: a
// paginated search service for event and venue records. The client issues
// single-page requests; page loops live in the aggregators.
package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"eventpulse/internal/metrics"
)

const (
	// DefaultEventsURL is the production events search endpoint.
	DefaultEventsURL = "https://app.ticketmaster.com/discovery/v2/events.json"

	// DefaultVenuesURL is the production venues search endpoint.
	DefaultVenuesURL = "https://app.ticketmaster.com/discovery/v2/venues.json"

	// DefaultTimeout bounds a single upstream round trip. There is no retry:
	// a timed-out request degrades the whole fetch.
	DefaultTimeout = 10 * time.Second
)

// ClientConfig contains configuration for the discovery client.
type ClientConfig struct {
	APIKey    string
	EventsURL string
	VenuesURL string
	Timeout   time.Duration
}

// Client calls the discovery API over HTTP.
type Client struct {
	apiKey     string
	eventsURL  string
	venuesURL  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a discovery client. Zero-valued config fields fall back
// to the production endpoints and the default timeout.
func NewClient(cfg ClientConfig, logger zerolog.Logger) *Client {
	if cfg.EventsURL == "" {
		cfg.EventsURL = DefaultEventsURL
	}
	if cfg.VenuesURL == "" {
		cfg.VenuesURL = DefaultVenuesURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		apiKey:    cfg.APIKey,
		eventsURL: cfg.EventsURL,
		venuesURL: cfg.VenuesURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.With().Str("component", "discovery").Logger(),
	}
}

// EventSearchParams are the query filters for one events page.
type EventSearchParams struct {
	Lat           float64
	Lon           float64
	Radius        int
	Size          int
	Page          int
	StartDateTime string
	EndDateTime   string
	Keyword       string
}

// VenueSearchParams are the query filters for one venues page.
type VenueSearchParams struct {
	Lat    float64
	Lon    float64
	Radius int
	Unit   string
	Size   int
	Page   int
}

// SearchEvents fetches a single page of event records.
func (c *Client) SearchEvents(ctx context.Context, p EventSearchParams) (*EventsResponse, error) {
	q := url.Values{}
	q.Set("apikey", c.apiKey)
	q.Set("size", strconv.Itoa(p.Size))
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("latlong", formatLatLong(p.Lat, p.Lon))
	q.Set("radius", strconv.Itoa(p.Radius))
	q.Set("unit", "miles")
	if p.StartDateTime != "" {
		q.Set("startDateTime", p.StartDateTime)
	}
	if p.EndDateTime != "" {
		q.Set("endDateTime", p.EndDateTime)
	}
	if p.Keyword != "" {
		q.Set("keyword", p.Keyword)
	}

	var resp EventsResponse
	if err := c.getJSON(ctx, "events", c.eventsURL+"?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchVenues fetches a single page of venue records.
func (c *Client) SearchVenues(ctx context.Context, p VenueSearchParams) (*VenuesResponse, error) {
	q := url.Values{}
	q.Set("apikey", c.apiKey)
	q.Set("latlong", formatLatLong(p.Lat, p.Lon))
	q.Set("radius", strconv.Itoa(p.Radius))
	q.Set("unit", p.Unit)
	q.Set("size", strconv.Itoa(p.Size))
	q.Set("page", strconv.Itoa(p.Page))

	var resp VenuesResponse
	if err := c.getJSON(ctx, "venues", c.venuesURL+"?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(endpoint, "error").Inc()
		return err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(endpoint, "error").Inc()
		c.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("discovery request failed")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.UpstreamRequests.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
		c.logger.Warn().Int("status", resp.StatusCode).Str("endpoint", endpoint).Msg("discovery API returned non-OK status")
		return fmt.Errorf("discovery API returned status code %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.UpstreamRequests.WithLabelValues(endpoint, "decode_error").Inc()
		return fmt.Errorf("decoding discovery response: %w", err)
	}

	metrics.UpstreamRequests.WithLabelValues(endpoint, "ok").Inc()
	return nil
}

func formatLatLong(lat, lon float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lon, 'f', -1, 64)
}
