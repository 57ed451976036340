package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"eventpulse/internal/domain/hotel"
)

// ConfigHandler serves the hotel configuration endpoints. Records are echoed
// without a backing store; persistence is out of scope.
type ConfigHandler struct{}

// NewConfigHandler creates a new config handler.
func NewConfigHandler() *ConfigHandler {
	return &ConfigHandler{}
}

// GetConfigs returns the configured hotel profiles.
func (h *ConfigHandler) GetConfigs(w http.ResponseWriter, r *http.Request) {
	configs := []hotel.Config{
		{
			ID:                      "config-1",
			HotelName:               "Nashville Grand Hotel",
			HotelAddress:            "123 Broadway, Nashville, TN 37201",
			HotelCoordinates:        "36.1627,-86.7816",
			DefaultSearchRadius:     10,
			NotificationEmail:       "manager@nashvillegrand.com",
			HighImpactThreshold:     75,
			CriticalImpactThreshold: 90,
			SyncFrequencyHours:      6,
			PricingSystemConnected:  false,
		},
	}

	respondWithJSON(w, http.StatusOK, configs)
}

// CreateConfig accepts a hotel profile and echoes it back with a generated
// id.
func (h *ConfigHandler) CreateConfig(w http.ResponseWriter, r *http.Request) {
	var cfg hotel.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid config payload", err)
		return
	}

	cfg.ID = "config-" + uuid.NewString()
	respondWithJSON(w, http.StatusOK, cfg)
}

// UpdateConfig echoes the submitted profile under the path id.
func (h *ConfigHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "Missing config ID", nil)
		return
	}

	var cfg hotel.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid config payload", err)
		return
	}

	cfg.ID = id
	respondWithJSON(w, http.StatusOK, cfg)
}

// DeleteConfig acknowledges deletion.
func (h *ConfigHandler) DeleteConfig(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
