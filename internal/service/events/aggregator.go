// Package events drives the event aggregation pipeline: repeated paginated
// discovery-API fetches, per-record normalization and enrichment, and final
// sorting and pagination.
package events

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"eventpulse/internal/discovery"
	"eventpulse/internal/domain/event"
	"eventpulse/internal/geo"
	"eventpulse/internal/metrics"
	"eventpulse/internal/service/daterange"
	"eventpulse/internal/service/images"
	"eventpulse/internal/service/impact"
)

// EventSearcher fetches single pages of raw event records.
type EventSearcher interface {
	SearchEvents(ctx context.Context, p discovery.EventSearchParams) (*discovery.EventsResponse, error)
}

// AlertPublisher receives the aggregated result for impact alerting.
// Publishing is best-effort and must never fail the fetch.
type AlertPublisher interface {
	PublishHighImpact(events []event.Event)
}

// AggregatorConfig contains configuration for the event aggregator.
type AggregatorConfig struct {
	// PageSize is the upstream page size, capped by the API at 200.
	PageSize int

	// MaxPages bounds the fetch loop.
	MaxPages int
}

// DefaultAggregatorConfig returns the aggregator defaults.
func DefaultAggregatorConfig() AggregatorConfig {
	return AggregatorConfig{
		PageSize: 200,
		MaxPages: 10,
	}
}

// Aggregator fetches, enriches, sorts and paginates event records.
type Aggregator struct {
	client   EventSearcher
	selector *images.Selector
	scorer   *impact.Scorer
	ranges   *daterange.Resolver
	alerts   AlertPublisher
	config   AggregatorConfig
	logger   zerolog.Logger
}

// NewAggregator creates a new event aggregator. alerts may be nil.
func NewAggregator(
	client EventSearcher,
	selector *images.Selector,
	scorer *impact.Scorer,
	ranges *daterange.Resolver,
	alerts AlertPublisher,
	config AggregatorConfig,
	logger zerolog.Logger,
) *Aggregator {
	if config.PageSize <= 0 {
		config.PageSize = 200
	}
	if config.MaxPages <= 0 {
		config.MaxPages = 10
	}
	return &Aggregator{
		client:   client,
		selector: selector,
		scorer:   scorer,
		ranges:   ranges,
		alerts:   alerts,
		config:   config,
		logger:   logger.With().Str("component", "events").Logger(),
	}
}

// Query describes one aggregation request.
type Query struct {
	StartDate string
	EndDate   string
	Keyword   string
	Page      int
	Size      int
	SortBy    string
	SortDir   string
	Lat       float64
	Lon       float64
	Radius    int
	Period    string
}

// Fetch resolves the date window, loops upstream pages until the requested
// size is covered or the upstream runs out, normalizes every raw record, then
// sorts and slices the accumulated set. An upstream request error degrades
// the whole fetch to an empty result; the caller never sees an error.
func (a *Aggregator) Fetch(ctx context.Context, q Query) []event.Event {
	startDate, endDate := a.ranges.Resolve(q.Period, q.StartDate, q.EndDate)

	var all []event.Event
	for page := 0; page < a.config.MaxPages; page++ {
		resp, err := a.client.SearchEvents(ctx, discovery.EventSearchParams{
			Lat:           q.Lat,
			Lon:           q.Lon,
			Radius:        q.Radius,
			Size:          a.config.PageSize,
			Page:          page,
			StartDateTime: startDate,
			EndDateTime:   endDate,
			Keyword:       q.Keyword,
		})
		if err != nil {
			a.logger.Error().Err(err).Int("page", page).Msg("event fetch failed, returning empty result")
			metrics.FetchFailures.WithLabelValues("events").Inc()
			return []event.Event{}
		}
		if resp.Embedded == nil || len(resp.Embedded.Events) == 0 {
			break
		}

		for i := range resp.Embedded.Events {
			all = append(all, a.normalize(&resp.Embedded.Events[i], q.Lat, q.Lon))
		}

		// A short page signals the last one.
		if len(all) >= q.Size || len(resp.Embedded.Events) < a.config.PageSize {
			break
		}
	}

	a.logger.Info().Int("total", len(all)).Msg("events aggregated")
	metrics.RecordsAggregated.WithLabelValues("events").Add(float64(len(all)))

	sortEvents(all, q.SortBy, q.SortDir)

	// Alerts cover the whole fetched set; pagination only scopes the response.
	if a.alerts != nil {
		a.alerts.PublishHighImpact(all)
	}

	from := min(q.Page*q.Size, len(all))
	to := min(from+q.Size, len(all))
	return all[from:to]
}

func (a *Aggregator) normalize(raw *discovery.RawEvent, searchLat, searchLon float64) event.Event {
	e := event.Event{
		ID:          raw.ID,
		Name:        raw.Name,
		TicketURL:   raw.URL,
		Description: raw.Info,
	}

	candidates := make([]event.ImageCandidate, 0, len(raw.Images))
	for _, img := range raw.Images {
		candidates = append(candidates, event.ImageCandidate{
			URL:    img.URL,
			Width:  img.Width,
			Height: img.Height,
			Ratio:  img.Ratio,
			Size:   img.Size,
		})
	}
	e.AllImages = candidates
	e.ApplyImage(a.selector.SelectBest(candidates, raw.Name))

	if raw.Dates != nil {
		if raw.Dates.Start != nil {
			e.Date = raw.Dates.Start.LocalDate
			e.Time = raw.Dates.Start.LocalTime
		}
		if raw.Dates.Status != nil {
			e.Status = raw.Dates.Status.Code
		}
	}

	var rawVenue *discovery.RawVenue
	if raw.Embedded != nil && len(raw.Embedded.Venues) > 0 {
		rawVenue = &raw.Embedded.Venues[0]
	}
	if rawVenue != nil {
		e.Venue = rawVenue.Name
		e.Address = FormatAddress(rawVenue)
		meta := metadataFor(rawVenue.Name)
		e.VenueTier = meta.Tier
		e.VenueType = meta.Type
	} else {
		e.VenueTier = "Other Venue"
		e.VenueType = "Other"
	}

	if lat, lon, ok := VenueCoordinates(rawVenue); ok {
		e.Distance = geo.DistanceMiles(searchLat, searchLon, lat, lon)
	} else {
		e.Distance = -1
	}

	if len(raw.Classifications) > 0 && raw.Classifications[0].Segment != nil {
		e.Category = raw.Classifications[0].Segment.Name
	}

	e.Price = formatPrice(raw.PriceRanges)

	e.ImpactScore = a.scorer.Score(e.VenueTier, e.Category, e.Date, e.Price)
	e.ImpactLevel = a.scorer.Level(e.ImpactScore)

	return e
}

// FormatAddress joins the available address parts with ", ". Each present
// part except the postal code appends its separator even when nothing
// follows, matching the established API output.
func FormatAddress(v *discovery.RawVenue) string {
	var b strings.Builder
	if v.Address != nil && v.Address.Line1 != "" {
		b.WriteString(v.Address.Line1)
		b.WriteString(", ")
	}
	if v.City != nil && v.City.Name != "" {
		b.WriteString(v.City.Name)
		b.WriteString(", ")
	}
	if v.State != nil && v.State.StateCode != "" {
		b.WriteString(v.State.StateCode)
		b.WriteString(", ")
	}
	if v.PostalCode != "" {
		b.WriteString(v.PostalCode)
	}
	return b.String()
}

// VenueCoordinates parses a raw venue's string-encoded coordinates. Bad or
// missing values report ok=false; callers substitute their sentinel.
func VenueCoordinates(v *discovery.RawVenue) (lat, lon float64, ok bool) {
	if v == nil || v.Location == nil {
		return 0, 0, false
	}
	lat, errLat := strconv.ParseFloat(v.Location.Latitude, 64)
	lon, errLon := strconv.ParseFloat(v.Location.Longitude, 64)
	if errLat != nil || errLon != nil {
		return 0, 0, false
	}
	return lat, lon, true
}

func formatPrice(ranges []discovery.PriceRange) string {
	if len(ranges) == 0 {
		return "Price not available"
	}
	pr := ranges[0]
	currency := pr.Currency
	if currency == "" {
		currency = "USD"
	}

	var b strings.Builder
	b.WriteString(currency)
	b.WriteString(" ")
	if pr.Min != nil {
		b.WriteString(strconv.FormatFloat(*pr.Min, 'f', -1, 64))
	}
	if pr.Max != nil {
		b.WriteString(" - ")
		b.WriteString(strconv.FormatFloat(*pr.Max, 'f', -1, 64))
	}
	return b.String()
}
