package events

import (
	"testing"

	"eventpulse/internal/domain/event"
)

func names(list []event.Event) []string {
	out := make([]string, len(list))
	for i := range list {
		out[i] = list[i].Name
	}
	return out
}

func TestSortEvents(t *testing.T) {
	tests := []struct {
		name    string
		list    []event.Event
		sortBy  string
		sortDir string
		want    []string
	}{
		{
			name: "date ascending is the default",
			list: []event.Event{
				{Name: "later", Date: "2025-07-02"},
				{Name: "sooner", Date: "2025-07-01"},
			},
			want: []string{"sooner", "later"},
		},
		{
			name: "date descending",
			list: []event.Event{
				{Name: "sooner", Date: "2025-07-01"},
				{Name: "later", Date: "2025-07-02"},
			},
			sortDir: "desc",
			want:    []string{"later", "sooner"},
		},
		{
			name: "missing date sorts last",
			list: []event.Event{
				{Name: "undated"},
				{Name: "dated", Date: "2025-07-01"},
			},
			want: []string{"dated", "undated"},
		},
		{
			name: "name sort ignores case",
			list: []event.Event{
				{Name: "Banana Jam"},
				{Name: "apple Fest"},
			},
			sortBy: "name",
			want:   []string{"apple Fest", "Banana Jam"},
		},
		{
			name: "venue sort",
			list: []event.Event{
				{Name: "b", Venue: "Ryman Auditorium"},
				{Name: "a", Venue: "Bridgestone Arena"},
			},
			sortBy: "venue",
			want:   []string{"a", "b"},
		},
		{
			name: "equal keys keep input order",
			list: []event.Event{
				{Name: "first", Date: "2025-07-01"},
				{Name: "second", Date: "2025-07-01"},
			},
			want: []string{"first", "second"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sortEvents(tt.list, tt.sortBy, tt.sortDir)
			got := names(tt.list)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("order = %v, want %v", got, tt.want)
				}
			}
		})
	}
}
