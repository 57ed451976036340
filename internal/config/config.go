// internal/config/config.go

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"eventpulse/internal/discovery"
)

// Config holds all application configuration
type Config struct {
	Environment string
	Server      ServerConfig
	Discovery   DiscoveryConfig
	NATS        NATSConfig
	Hotel       HotelConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	CorsOrigins     []string
}

// DiscoveryConfig holds the upstream discovery API configuration
type DiscoveryConfig struct {
	APIKey    string
	EventsURL string
	VenuesURL string
	Timeout   time.Duration
}

// NATSConfig holds NATS configuration
type NATSConfig struct {
	Enabled        bool
	URL            string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectTimeout time.Duration
	AlertsSubject  string
}

// HotelConfig holds the default search origin used when callers omit
// coordinates
type HotelConfig struct {
	Lat    float64
	Lon    float64
	Radius int
}

// Load loads configuration from environment variables
func Load() (Config, error) {
	config := Config{
		Environment: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			CorsOrigins:     getEnvAsSlice("SERVER_CORS_ORIGINS", []string{"*"}),
		},
		Discovery: DiscoveryConfig{
			APIKey:    getEnv("TICKETMASTER_API_KEY", ""),
			EventsURL: getEnv("TICKETMASTER_EVENTS_URL", discovery.DefaultEventsURL),
			VenuesURL: getEnv("TICKETMASTER_VENUES_URL", discovery.DefaultVenuesURL),
			Timeout:   getEnvAsDuration("TICKETMASTER_TIMEOUT", discovery.DefaultTimeout),
		},
		NATS: NATSConfig{
			Enabled:        getEnvAsBool("NATS_ENABLED", false),
			URL:            getEnv("NATS_URL", "nats://localhost:4222"),
			MaxReconnects:  getEnvAsInt("NATS_MAX_RECONNECTS", 10),
			ReconnectWait:  getEnvAsDuration("NATS_RECONNECT_WAIT", 1*time.Second),
			ConnectTimeout: getEnvAsDuration("NATS_CONNECT_TIMEOUT", 2*time.Second),
			AlertsSubject:  getEnv("NATS_ALERTS_SUBJECT", "alerts.events"),
		},
		Hotel: HotelConfig{
			Lat:    getEnvAsFloat("HOTEL_LAT", 36.1656),
			Lon:    getEnvAsFloat("HOTEL_LON", -86.7781),
			Radius: getEnvAsInt("HOTEL_SEARCH_RADIUS", 10),
		},
	}

	return config, validate(config)
}

// validate checks if config is valid
func validate(config Config) error {
	if config.Discovery.APIKey == "" && config.Environment != "development" {
		return fmt.Errorf("discovery API key must be set in non-development environments")
	}

	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}
