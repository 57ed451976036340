// cmd/api/main.go

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"eventpulse/internal/alert"
	"eventpulse/internal/config"
	"eventpulse/internal/discovery"
	"eventpulse/internal/server"
	"eventpulse/internal/server/handlers"
	"eventpulse/internal/service/daterange"
	"eventpulse/internal/service/events"
	"eventpulse/internal/service/images"
	"eventpulse/internal/service/impact"
	"eventpulse/internal/service/venues"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	setupLogging(cfg.Environment)

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// NATS is optional; without it the service runs but publishes no alerts
	var natsConn *nats.Conn
	if cfg.NATS.Enabled {
		natsConn, err = initNATS(cfg.NATS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to NATS")
		}
		defer natsConn.Close()
	}

	// Initialize the upstream discovery client
	client := discovery.NewClient(discovery.ClientConfig{
		APIKey:    cfg.Discovery.APIKey,
		EventsURL: cfg.Discovery.EventsURL,
		VenuesURL: cfg.Discovery.VenuesURL,
		Timeout:   cfg.Discovery.Timeout,
	}, log.Logger)

	// Initialize services
	selector := images.NewSelector(log.Logger)
	scorer := impact.NewScorer()
	ranges := daterange.NewResolver()

	var alerts events.AlertPublisher
	if natsConn != nil {
		alerts = alert.NewPublisher(natsConn, cfg.NATS.AlertsSubject, log.Logger)
	}

	eventAggregator := events.NewAggregator(
		client,
		selector,
		scorer,
		ranges,
		alerts,
		events.DefaultAggregatorConfig(),
		log.Logger,
	)
	venueAggregator := venues.NewAggregator(client, log.Logger)

	defaults := handlers.SearchDefaults{
		Lat:    cfg.Hotel.Lat,
		Lon:    cfg.Hotel.Lon,
		Radius: cfg.Hotel.Radius,
	}

	// Initialize HTTP server
	httpServer := server.NewServer(
		cfg.Server,
		natsConn,
		cfg.NATS.AlertsSubject,
		eventAggregator,
		venueAggregator,
		defaults,
	)

	// Start HTTP server
	go func() {
		log.Info().Str("host", cfg.Server.Host).Int("port", cfg.Server.Port).Msg("starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// Wait for shutdown signal
	<-shutdown
	log.Info().Msg("shutdown signal received")

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	// Shutdown HTTP server
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("shutdown complete")
}

// setupLogging configures the global logger
func setupLogging(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// initNATS connects to the NATS server
func initNATS(cfg config.NATSConfig) (*nats.Conn, error) {
	options := []nats.Option{
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.Timeout(cfg.ConnectTimeout),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Warn().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			log.Info().Msg("NATS connection closed")
		}),
	}

	return nats.Connect(cfg.URL, options...)
}
