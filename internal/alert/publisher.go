// Package alert publishes high-impact events to the NATS event bus so
// downstream consumers (dashboard WebSocket bridge, notification workers)
// can react without polling.
package alert

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"

	"eventpulse/internal/domain/event"
	"eventpulse/internal/metrics"
)

// DefaultSubject is the NATS subject impact alerts are published on.
const DefaultSubject = "alerts.events"

// Publisher pushes High and Critical impact events onto the bus.
// Publishing is best-effort: failures are logged and never surfaced to the
// aggregation pipeline.
type Publisher struct {
	conn    *nats.Conn
	subject string
	logger  zerolog.Logger
}

// NewPublisher creates an alert publisher on the given connection.
func NewPublisher(conn *nats.Conn, subject string, logger zerolog.Logger) *Publisher {
	if subject == "" {
		subject = DefaultSubject
	}
	return &Publisher{
		conn:    conn,
		subject: subject,
		logger:  logger.With().Str("component", "alert").Logger(),
	}
}

// PublishHighImpact publishes every event whose impact level is High or
// Critical.
func (p *Publisher) PublishHighImpact(events []event.Event) {
	if p == nil || p.conn == nil {
		return
	}
	for i := range events {
		e := &events[i]
		if e.ImpactLevel != event.LevelHigh && e.ImpactLevel != event.LevelCritical {
			continue
		}
		payload, err := json.Marshal(e)
		if err != nil {
			p.logger.Warn().Err(err).Str("event_id", e.ID).Msg("failed to marshal alert")
			continue
		}
		if err := p.conn.Publish(p.subject, payload); err != nil {
			p.logger.Warn().Err(err).Str("event_id", e.ID).Msg("failed to publish alert")
			continue
		}
		metrics.AlertsPublished.Inc()
	}
}
