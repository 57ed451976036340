// Package venues drives the venue aggregation pipeline: paginated discovery
// fetches, per-venue enrichment, and ordering by activity, completeness and
// distance.
package venues

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"strconv"

	"github.com/rs/zerolog"

	"eventpulse/internal/discovery"
	"eventpulse/internal/domain/venue"
	"eventpulse/internal/geo"
	"eventpulse/internal/metrics"
	"eventpulse/internal/service/events"
)

// maxPageSize is the upstream's per-page ceiling.
const maxPageSize = 200

// VenueSearcher fetches single pages of raw venue records.
type VenueSearcher interface {
	SearchVenues(ctx context.Context, p discovery.VenueSearchParams) (*discovery.VenuesResponse, error)
}

// Aggregator fetches, enriches and orders venue records.
type Aggregator struct {
	client VenueSearcher
	logger zerolog.Logger
}

// NewAggregator creates a new venue aggregator.
func NewAggregator(client VenueSearcher, logger zerolog.Logger) *Aggregator {
	return &Aggregator{
		client: client,
		logger: logger.With().Str("component", "venues").Logger(),
	}
}

// Query describes one venue aggregation request.
type Query struct {
	Lat    float64
	Lon    float64
	Radius int
	Unit   string
	Size   int
}

// Fetch loops upstream venue pages until the reported page count is exhausted
// or the requested size is covered, then sorts and trims the set. A mid-fetch
// upstream error keeps what was already accumulated; a first-page failure
// yields an empty slice.
func (a *Aggregator) Fetch(ctx context.Context, q Query) []venue.Venue {
	pageSize := min(q.Size, maxPageSize)

	all := []venue.Venue{}
	for page := 0; ; {
		resp, err := a.client.SearchVenues(ctx, discovery.VenueSearchParams{
			Lat:    q.Lat,
			Lon:    q.Lon,
			Radius: q.Radius,
			Unit:   q.Unit,
			Size:   pageSize,
			Page:   page,
		})
		if err != nil {
			a.logger.Error().Err(err).Int("page", page).Int("accumulated", len(all)).
				Msg("venue fetch failed, keeping accumulated results")
			metrics.FetchFailures.WithLabelValues("venues").Inc()
			break
		}
		if resp.Embedded == nil || len(resp.Embedded.Venues) == 0 {
			break
		}

		for i := range resp.Embedded.Venues {
			all = append(all, a.normalize(&resp.Embedded.Venues[i], q.Lat, q.Lon))
		}

		totalPages := 1
		if resp.Page != nil && resp.Page.TotalPages > 0 {
			totalPages = resp.Page.TotalPages
		}
		page++
		if page >= totalPages || len(all) >= q.Size {
			break
		}
	}

	a.logger.Info().Int("total", len(all)).Msg("venues aggregated")
	metrics.RecordsAggregated.WithLabelValues("venues").Add(float64(len(all)))

	sortVenues(all)

	if len(all) > q.Size {
		all = all[:q.Size]
	}
	return all
}

func (a *Aggregator) normalize(raw *discovery.RawVenue, searchLat, searchLon float64) venue.Venue {
	v := venue.Venue{
		ID:         raw.ID,
		Name:       raw.Name,
		URL:        raw.URL,
		Timezone:   raw.Timezone,
		PostalCode: raw.PostalCode,
	}

	if img := bestImage(raw.Images); img != nil && img.URL != "" {
		url, width, height, ratio := img.URL, img.Width, img.Height, img.Ratio
		v.ImageURL = &url
		v.ImageWidth = &width
		v.ImageHeight = &height
		v.ImageRatio = &ratio
	}

	v.Address = events.FormatAddress(raw)

	if lat, lon, ok := events.VenueCoordinates(raw); ok {
		v.Latitude = &lat
		v.Longitude = &lon
		v.Coordinates = strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lon, 'f', -1, 64)
		d := geo.DistanceMiles(searchLat, searchLon, lat, lon)
		v.DistanceFromSearch = &d
	}

	if raw.BoxOfficeInfo != nil {
		v.ContactPhone = raw.BoxOfficeInfo.PhoneNumberDetail
		v.BoxOfficeHours = raw.BoxOfficeInfo.OpenHoursDetail
		v.AcceptedPayment = raw.BoxOfficeInfo.AcceptedPaymentDetail
		v.WillCallInfo = raw.BoxOfficeInfo.WillCallDetail
	}
	v.ParkingInfo = raw.ParkingDetail
	v.AccessibilityInfo = raw.AccessibleSeatingDetail
	if raw.GeneralInfo != nil {
		v.GeneralRules = raw.GeneralInfo.GeneralRule
		v.ChildPolicy = raw.GeneralInfo.ChildRule
	}
	if raw.Social != nil && raw.Social.Twitter != nil {
		v.TwitterHandle = raw.Social.Twitter.Handle
	}

	if len(raw.Classifications) == 0 {
		v.VenueType = "Other"
	} else if seg := raw.Classifications[0].Segment; seg != nil {
		v.VenueType = seg.Name
	}

	v.Capacity = parseCapacity(raw.Capacity)
	if raw.UpcomingEvents != nil {
		v.UpcomingEventsCount = raw.UpcomingEvents.Total
	}

	return v
}

// bestImage prefers the first 16:9 image anywhere in the list, then the first
// 4:3 image, then whatever comes first. No priority or quality scoring.
func bestImage(imgs []discovery.Image) *discovery.Image {
	var best *discovery.Image
	for i := range imgs {
		switch {
		case imgs[i].Ratio == "16_9":
			return &imgs[i]
		case imgs[i].Ratio == "4_3" && best == nil:
			best = &imgs[i]
		case best == nil:
			best = &imgs[i]
		}
	}
	return best
}

// parseCapacity tolerates both numeric and string-encoded capacities.
func parseCapacity(raw json.RawMessage) *int {
	if len(raw) == 0 {
		return nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return &n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.Atoi(s); err == nil {
			return &n
		}
	}
	return nil
}

// sortVenues orders by upcoming-events count descending, completeness score
// descending, then distance ascending with missing distances last.
func sortVenues(list []venue.Venue) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := &list[i], &list[j]
		if a.UpcomingEventsCount != b.UpcomingEventsCount {
			return a.UpcomingEventsCount > b.UpcomingEventsCount
		}
		aScore, bScore := a.CompletenessScore(), b.CompletenessScore()
		if aScore != bScore {
			return aScore > bScore
		}
		return distanceOrInf(a) < distanceOrInf(b)
	})
}

func distanceOrInf(v *venue.Venue) float64 {
	if v.DistanceFromSearch != nil {
		return *v.DistanceFromSearch
	}
	return math.Inf(1)
}
