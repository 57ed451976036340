// internal/server/server.go

package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eventpulse/internal/config"
	"eventpulse/internal/server/handlers"
)

// Server represents the HTTP server
type Server struct {
	server *http.Server
	router *chi.Mux
}

// NewServer creates a new HTTP server
func NewServer(
	cfg config.ServerConfig,
	natsConn *nats.Conn,
	alertsSubject string,
	eventFetcher handlers.EventFetcher,
	venueFetcher handlers.VenueFetcher,
	defaults handlers.SearchDefaults,
) *Server {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// CORS configuration
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Create handler dependencies
	eventHandler := handlers.NewEventHandler(eventFetcher, defaults)
	venueHandler := handlers.NewVenueHandler(venueFetcher, defaults)
	configHandler := handlers.NewConfigHandler()
	integrationHandler := handlers.NewIntegrationHandler()

	// Routes
	router.Route("/api", func(r chi.Router) {
		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("OK"))
		})

		// Events API
		r.Get("/events", eventHandler.GetEvents)
		r.Get("/image-stats", eventHandler.GetImageStats)
		r.Get("/test-images", eventHandler.GetTestImages)

		// Venues API
		r.Get("/venues", venueHandler.GetVenues)

		// Hotel configuration API
		r.Route("/config", func(r chi.Router) {
			r.Get("/", configHandler.GetConfigs)
			r.Post("/", configHandler.CreateConfig)
			r.Put("/{id}", configHandler.UpdateConfig)
			r.Delete("/{id}", configHandler.DeleteConfig)
		})

		// Integration settings API
		r.Route("/integrations/ticketmaster", func(r chi.Router) {
			r.Get("/", integrationHandler.GetSettings)
			r.Post("/", integrationHandler.SaveSettings)
			r.Post("/toggle", integrationHandler.Toggle)
		})
	})

	// Prometheus metrics
	router.Handle("/metrics", promhttp.Handler())

	// WebSocket endpoint for real-time impact alerts
	router.Get("/ws/alerts", handlers.AlertsWebSocketHandler(natsConn, alertsSubject))

	// Create HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &Server{
		server: httpServer,
		router: router,
	}
}

// ListenAndServe starts the HTTP server
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
