package handlers

import (
	"context"
	"net/http"
	"strings"

	"eventpulse/internal/domain/venue"
	"eventpulse/internal/service/venues"
)

// VenueFetcher aggregates normalized venues for a query.
type VenueFetcher interface {
	Fetch(ctx context.Context, q venues.Query) []venue.Venue
}

// VenueHandler handles venue-related HTTP requests.
type VenueHandler struct {
	fetcher  VenueFetcher
	defaults SearchDefaults
}

// NewVenueHandler creates a new venue handler.
func NewVenueHandler(fetcher VenueFetcher, defaults SearchDefaults) *VenueHandler {
	return &VenueHandler{
		fetcher:  fetcher,
		defaults: defaults,
	}
}

// GetVenues returns venues near a point, ordered by activity, completeness
// and distance. Out-of-range coordinates are rejected; other bad parameters
// are clamped to their defaults.
func (h *VenueHandler) GetVenues(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	lat := floatParam(query.Get("lat"), h.defaults.Lat)
	lon := floatParam(query.Get("lon"), h.defaults.Lon)
	radius := intParam(query.Get("radius"), h.defaults.Radius)
	unit := stringParam(query.Get("unit"), "miles")
	size := intParam(query.Get("size"), 50)

	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		respondWithJSON(w, http.StatusBadRequest, []map[string]string{{"error": "Invalid coordinates"}})
		return
	}
	if radius <= 0 {
		radius = 10
	}
	if !strings.EqualFold(unit, "miles") && !strings.EqualFold(unit, "km") {
		unit = "miles"
	}
	if size <= 0 {
		size = 50
	}

	result := h.fetcher.Fetch(r.Context(), venues.Query{
		Lat:    lat,
		Lon:    lon,
		Radius: radius,
		Unit:   unit,
		Size:   size,
	})

	if len(result) == 0 {
		respondWithJSON(w, http.StatusOK, []map[string]string{{"message": "No venues found in radius"}})
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}
