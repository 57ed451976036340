package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"eventpulse/internal/domain/event"
	"eventpulse/internal/service/events"
)

// EventFetcher aggregates normalized events for a query.
type EventFetcher interface {
	Fetch(ctx context.Context, q events.Query) []event.Event
}

// SearchDefaults are the fallback search origin and radius applied when the
// caller omits them.
type SearchDefaults struct {
	Lat    float64
	Lon    float64
	Radius int
}

// EventHandler handles event-related HTTP requests.
type EventHandler struct {
	fetcher  EventFetcher
	defaults SearchDefaults
}

// NewEventHandler creates a new event handler.
func NewEventHandler(fetcher EventFetcher, defaults SearchDefaults) *EventHandler {
	return &EventHandler{
		fetcher:  fetcher,
		defaults: defaults,
	}
}

// GetEvents returns the sorted, paginated event list plus a pagination
// envelope.
func (h *EventHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	q := events.Query{
		StartDate: query.Get("startDate"),
		EndDate:   query.Get("endDate"),
		Keyword:   query.Get("keyword"),
		Period:    query.Get("period"),
		Page:      intParam(query.Get("page"), 0),
		Size:      intParam(query.Get("size"), 20),
		SortBy:    stringParam(query.Get("sortBy"), "date"),
		SortDir:   stringParam(query.Get("sortDir"), "asc"),
		Lat:       floatParam(query.Get("lat"), h.defaults.Lat),
		Lon:       floatParam(query.Get("lon"), h.defaults.Lon),
		Radius:    intParam(query.Get("radius"), h.defaults.Radius),
	}

	if q.Page < 0 {
		q.Page = 0
	}
	if q.Size <= 0 {
		q.Size = 20
	}

	result := h.fetcher.Fetch(r.Context(), q)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"events":     result,
		"pagination": paginationInfo(q.Page, q.Size, len(result)),
	})
}

// GetImageStats reports image coverage and quality/ratio distributions over a
// sample fetch. Diagnostic endpoint for the dashboard.
func (h *EventHandler) GetImageStats(w http.ResponseWriter, r *http.Request) {
	sample := h.fetcher.Fetch(r.Context(), events.Query{
		Page:    0,
		Size:    50,
		SortBy:  "date",
		SortDir: "asc",
		Lat:     h.defaults.Lat,
		Lon:     h.defaults.Lon,
		Radius:  h.defaults.Radius,
		Period:  "week",
	})

	total := len(sample)
	withImages := 0
	qualityDistribution := map[string]int{}
	ratioDistribution := map[string]int{}
	for i := range sample {
		if sample[i].EventImage != "" {
			withImages++
		}
		if sample[i].ImageQuality != "" {
			qualityDistribution[sample[i].ImageQuality]++
		}
		if sample[i].ImageRatio != "" {
			ratioDistribution[sample[i].ImageRatio]++
		}
	}

	coverage := 0.0
	if total > 0 {
		coverage = float64(withImages) / float64(total) * 100
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"totalEvents":             total,
		"eventsWithImages":        withImages,
		"eventsWithoutImages":     total - withImages,
		"imageCoveragePercentage": coverage,
		"qualityDistribution":     qualityDistribution,
		"ratioDistribution":       ratioDistribution,
		"success":                 true,
	})
}

// GetTestImages fetches a five-event sample and reports image coverage plus
// up to three sample image descriptors. Diagnostic endpoint for verifying
// image selection end to end.
func (h *EventHandler) GetTestImages(w http.ResponseWriter, r *http.Request) {
	sample := h.fetcher.Fetch(r.Context(), events.Query{
		Page:    0,
		Size:    5,
		SortBy:  "date",
		SortDir: "asc",
		Lat:     h.defaults.Lat,
		Lon:     h.defaults.Lon,
		Radius:  h.defaults.Radius,
		Period:  "week",
	})

	withImages := 0
	sampleImages := make([]map[string]interface{}, 0, 3)
	for i := range sample {
		if sample[i].EventImage == "" {
			continue
		}
		withImages++
		if len(sampleImages) < 3 {
			sampleImages = append(sampleImages, map[string]interface{}{
				"eventName":  sample[i].Name,
				"imageUrl":   sample[i].EventImage,
				"quality":    sample[i].ImageQuality,
				"dimensions": fmt.Sprintf("%dx%d", sample[i].ImageWidth, sample[i].ImageHeight),
				"fileSize":   sample[i].ImageFileSize,
				"ratio":      sample[i].ImageRatio,
				"priority":   sample[i].ImagePriority,
			})
		}
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"totalEvents":         len(sample),
		"eventsWithImages":    withImages,
		"eventsWithoutImages": len(sample) - withImages,
		"sampleImages":        sampleImages,
		"success":             true,
	})
}

// paginationInfo builds the navigation envelope returned alongside the event
// list.
func paginationInfo(currentPage, pageSize, currentPageSize int) map[string]interface{} {
	startPage := currentPage - 2
	if startPage < 0 {
		startPage = 0
	}
	endPage := currentPage + 2

	pageNumbers := make([]int, 0, endPage-startPage+1)
	for i := startPage; i <= endPage; i++ {
		pageNumbers = append(pageNumbers, i)
	}

	previousPage := currentPage - 1
	if previousPage < 0 {
		previousPage = 0
	}

	return map[string]interface{}{
		"currentPage":     currentPage,
		"pageSize":        pageSize,
		"currentPageSize": currentPageSize,
		"hasNextPage":     currentPageSize == pageSize,
		"hasPreviousPage": currentPage > 0,
		"nextPage":        currentPage + 1,
		"previousPage":    previousPage,
		"pageNumbers":     pageNumbers,
	}
}

func intParam(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func floatParam(raw string, def float64) float64 {
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

func stringParam(raw, def string) string {
	if raw == "" {
		return def
	}
	return raw
}
