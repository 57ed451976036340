// Package impact computes an event's impact score and level from its venue
// tier, category, date proximity and price.
package impact

import (
	"strconv"
	"strings"
	"time"

	"eventpulse/internal/domain/event"
)

// Contributions are evaluated in order; the first matching entry of each
// group wins.
var tierWeights = []struct {
	substr string
	points int
}{
	{"Mega Venue", 40},
	{"Major Arena", 30},
	{"Large", 20},
	{"Medium", 15},
	{"Small", 10},
	{"Intimate", 5},
}

var categoryWeights = []struct {
	name   string
	points int
}{
	{"Music", 15},
	{"Sports", 12},
	{"Arts & Theatre", 10},
}

// Scorer derives impact scores. Safe for concurrent use.
type Scorer struct {
	now func() time.Time
}

// NewScorer creates a new impact scorer.
func NewScorer() *Scorer {
	return &Scorer{now: time.Now}
}

// Score returns the additive impact score for the given venue tier label,
// category, ISO calendar date and formatted price string. Unparseable dates
// and prices contribute zero.
func (s *Scorer) Score(tier, category, isoDate, price string) int {
	score := 0

	for _, w := range tierWeights {
		if strings.Contains(tier, w.substr) {
			score += w.points
			break
		}
	}

	for _, w := range categoryWeights {
		if strings.EqualFold(category, w.name) {
			score += w.points
			break
		}
	}

	score += s.dateProximityPoints(isoDate)
	score += pricePoints(price)

	return score
}

// Level maps a score to its impact level.
func (s *Scorer) Level(score int) string {
	switch {
	case score >= 60:
		return event.LevelCritical
	case score >= 40:
		return event.LevelHigh
	case score >= 25:
		return event.LevelMedium
	default:
		return event.LevelLow
	}
}

// dateProximityPoints weights events by absolute calendar-day distance from
// today. Both dates are anchored at UTC midnight so the difference is an
// exact multiple of 24h even across DST transitions.
func (s *Scorer) dateProximityPoints(isoDate string) int {
	if isoDate == "" {
		return 0
	}
	eventDate, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return 0
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(eventDate.Sub(today).Hours() / 24)
	if days < 0 {
		days = -days
	}

	switch {
	case days == 0:
		return 15
	case days <= 2:
		return 10
	case days <= 7:
		return 5
	default:
		return 0
	}
}

// pricePoints reads the numeric token following the currency code in a
// formatted price string ("USD 150 - 300").
func pricePoints(price string) int {
	parts := strings.Split(price, " ")
	if len(parts) < 2 {
		return 0
	}
	value, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0
	}

	switch {
	case value > 100:
		return 10
	case value > 50:
		return 5
	default:
		return 0
	}
}
