package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// IntegrationHandler serves the upstream-integration settings endpoints.
// Settings are mocked; there is no backing store.
type IntegrationHandler struct{}

// NewIntegrationHandler creates a new integration handler.
func NewIntegrationHandler() *IntegrationHandler {
	return &IntegrationHandler{}
}

// GetSettings returns the discovery integration settings.
func (h *IntegrationHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings := map[string]interface{}{
		"enabled":      true,
		"apiKey":       "demo-key-12345",
		"baseUrl":      "https://app.ticketmaster.com/discovery/v2/",
		"rateLimit":    2000,
		"syncInterval": 6,
		"lastSync":     "2 minutes ago",
		"status":       "connected",
		"endpoint":     "api.ticketmasterapi.com",
		"dataFlow":     "Real-time",
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"settings": settings,
		"success":  true,
	})
}

// SaveSettings echoes the submitted settings.
func (h *IntegrationHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var settings map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid settings payload", err)
		return
	}

	log.Info().Interface("settings", settings).Msg("saving discovery integration settings")

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"settings": settings,
		"success":  true,
		"message":  "Ticketmaster integration settings saved successfully",
	})
}

// Toggle enables or disables the integration.
func (h *IntegrationHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid toggle payload", err)
		return
	}

	message := "Ticketmaster integration disabled"
	if req.Enabled {
		message = "Ticketmaster integration enabled"
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"enabled": req.Enabled,
		"success": true,
		"message": message,
	})
}
