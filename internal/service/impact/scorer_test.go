package impact

import (
	"testing"
	"time"

	"eventpulse/internal/domain/event"
)

func fixedScorer(now time.Time) *Scorer {
	return &Scorer{now: func() time.Time { return now }}
}

func TestScore(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	s := fixedScorer(now)

	tests := []struct {
		name     string
		tier     string
		category string
		date     string
		price    string
		want     int
	}{
		{
			name:     "mega venue concert today with premium pricing",
			tier:     "Mega Venue (50,000+)",
			category: "Music",
			date:     "2025-06-15",
			price:    "USD 150 - 300",
			want:     40 + 15 + 15 + 10,
		},
		{
			name:     "large theater sports in two days",
			tier:     "Large Theater (2,000-5,000)",
			category: "Sports",
			date:     "2025-06-17",
			price:    "USD 75",
			want:     20 + 12 + 10 + 5,
		},
		{
			name:     "intimate arts show next week",
			tier:     "Intimate Venue",
			category: "Arts & Theatre",
			date:     "2025-06-22",
			price:    "USD 30",
			want:     5 + 10 + 5,
		},
		{
			name:     "category matches case-insensitively",
			tier:     "",
			category: "music",
			date:     "",
			price:    "",
			want:     15,
		},
		{
			name:     "unknown tier and category contribute nothing",
			tier:     "Other Venue",
			category: "Film",
			date:     "2025-08-01",
			price:    "USD 20",
			want:     0,
		},
		{
			name:     "past date counts by absolute distance",
			tier:     "",
			category: "",
			date:     "2025-06-13",
			price:    "",
			want:     10,
		},
		{
			name:     "malformed date and price contribute zero",
			tier:     "Medium Venue",
			category: "",
			date:     "not-a-date",
			price:    "Price not available",
			want:     15,
		},
		{
			name:     "price at boundary does not count",
			tier:     "",
			category: "",
			date:     "",
			price:    "USD 50",
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Score(tt.tier, tt.category, tt.date, tt.price)
			if got != tt.want {
				t.Errorf("Score(%q, %q, %q, %q) = %d, want %d",
					tt.tier, tt.category, tt.date, tt.price, got, tt.want)
			}
		})
	}
}

func TestLevel(t *testing.T) {
	s := NewScorer()

	tests := []struct {
		score int
		want  string
	}{
		{80, event.LevelCritical},
		{60, event.LevelCritical},
		{59, event.LevelHigh},
		{40, event.LevelHigh},
		{39, event.LevelMedium},
		{25, event.LevelMedium},
		{24, event.LevelLow},
		{0, event.LevelLow},
	}

	for _, tt := range tests {
		if got := s.Level(tt.score); got != tt.want {
			t.Errorf("Level(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestDateProximityPoints(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 30, 0, 0, time.Local)
	s := fixedScorer(now)

	tests := []struct {
		date string
		want int
	}{
		{"2025-06-15", 15},
		{"2025-06-16", 10},
		{"2025-06-17", 10},
		{"2025-06-18", 5},
		{"2025-06-22", 5},
		{"2025-06-23", 0},
		{"2025-06-08", 5},
		{"2025-06-07", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := s.dateProximityPoints(tt.date); got != tt.want {
			t.Errorf("dateProximityPoints(%q) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestDateProximityPointsAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// 2025-03-09 is the US spring-forward date; windows spanning it lose a
	// wall-clock hour but must still count whole calendar days.
	s := fixedScorer(time.Date(2025, 3, 8, 12, 0, 0, 0, loc))

	tests := []struct {
		date string
		want int
	}{
		{"2025-03-09", 10},
		{"2025-03-15", 5},
		{"2025-03-16", 0},
	}

	for _, tt := range tests {
		if got := s.dateProximityPoints(tt.date); got != tt.want {
			t.Errorf("dateProximityPoints(%q) = %d, want %d", tt.date, got, tt.want)
		}
	}
}
