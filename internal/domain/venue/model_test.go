package venue

import "testing"

func TestCompletenessScore(t *testing.T) {
	str := func(s string) *string { return &s }
	capacity := 2362

	tests := []struct {
		name  string
		venue Venue
		want  int
	}{
		{
			name:  "empty record",
			venue: Venue{},
			want:  0,
		},
		{
			name: "whitespace address does not count",
			venue: Venue{
				Address: "  \t\n",
			},
			want: 0,
		},
		{
			name: "each populated field counts once",
			venue: Venue{
				Capacity:       &capacity,
				ImageURL:       str("https://img.example.com/v.jpg"),
				Address:        "116 5th Ave N, Nashville, TN",
				ContactPhone:   str("(615) 555-0100"),
				BoxOfficeHours: str("10am-5pm"),
			},
			want: 5,
		},
		{
			name: "fully described venue",
			venue: Venue{
				Capacity:          &capacity,
				ImageURL:          str("https://img.example.com/v.jpg"),
				Address:           "116 5th Ave N",
				ContactPhone:      str("(615) 555-0100"),
				BoxOfficeHours:    str("10am-5pm"),
				ParkingInfo:       str("Garage on 5th"),
				AccessibilityInfo: str("Accessible entrances on all sides"),
				GeneralRules:      str("No outside food"),
			},
			want: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.venue.CompletenessScore(); got != tt.want {
				t.Errorf("CompletenessScore() = %d, want %d", got, tt.want)
			}
		})
	}
}
