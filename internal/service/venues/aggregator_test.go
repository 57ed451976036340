package venues

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"eventpulse/internal/discovery"
	"eventpulse/internal/domain/venue"
)

type fakeVenueSearcher struct {
	pages [][]discovery.RawVenue
	err   error
	// failAfter fails every call past this page index; -1 disables it.
	failAfter int
	calls     int
}

func (f *fakeVenueSearcher) SearchVenues(ctx context.Context, p discovery.VenueSearchParams) (*discovery.VenuesResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.failAfter > 0 && p.Page >= f.failAfter {
		return nil, errors.New("upstream unavailable")
	}
	if p.Page >= len(f.pages) {
		return &discovery.VenuesResponse{}, nil
	}
	return &discovery.VenuesResponse{
		Embedded: &discovery.VenuesEmbedded{Venues: f.pages[p.Page]},
		Page:     &discovery.Page{TotalPages: len(f.pages), Number: p.Page},
	}, nil
}

func makeRawVenues(page, n int) []discovery.RawVenue {
	venues := make([]discovery.RawVenue, n)
	for i := range venues {
		venues[i] = discovery.RawVenue{
			ID:   fmt.Sprintf("v%d-%d", page, i),
			Name: fmt.Sprintf("Venue %d-%d", page, i),
		}
	}
	return venues
}

func TestFetchWalksAllPages(t *testing.T) {
	client := &fakeVenueSearcher{pages: [][]discovery.RawVenue{
		makeRawVenues(0, 3),
		makeRawVenues(1, 3),
		makeRawVenues(2, 2),
	}}
	a := NewAggregator(client, zerolog.Nop())

	got := a.Fetch(context.Background(), Query{Size: 50})

	if client.calls != 3 {
		t.Errorf("upstream calls = %d, want 3", client.calls)
	}
	if len(got) != 8 {
		t.Errorf("len = %d, want 8", len(got))
	}
}

func TestFetchFirstPageFailureYieldsEmpty(t *testing.T) {
	client := &fakeVenueSearcher{err: errors.New("boom")}
	a := NewAggregator(client, zerolog.Nop())

	got := a.Fetch(context.Background(), Query{Size: 50})

	if got == nil {
		t.Fatal("want non-nil empty slice")
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestFetchMidFetchFailureKeepsAccumulated(t *testing.T) {
	client := &fakeVenueSearcher{
		pages: [][]discovery.RawVenue{
			makeRawVenues(0, 3),
			makeRawVenues(1, 3),
			makeRawVenues(2, 3),
		},
		failAfter: 1,
	}
	a := NewAggregator(client, zerolog.Nop())

	got := a.Fetch(context.Background(), Query{Size: 50})

	if len(got) != 3 {
		t.Errorf("len = %d, want the 3 venues fetched before the failure", len(got))
	}
}

func TestFetchTruncatesToRequestedSize(t *testing.T) {
	client := &fakeVenueSearcher{pages: [][]discovery.RawVenue{makeRawVenues(0, 10)}}
	a := NewAggregator(client, zerolog.Nop())

	got := a.Fetch(context.Background(), Query{Size: 4})

	if len(got) != 4 {
		t.Errorf("len = %d, want 4", len(got))
	}
}

func TestNormalize(t *testing.T) {
	a := NewAggregator(&fakeVenueSearcher{}, zerolog.Nop())

	phone := "(615) 555-0100"
	hours := "10am-5pm"
	parking := "Garage on 5th"
	rule := "No outside food"
	handle := "@ryman"

	raw := discovery.RawVenue{
		ID:         "v1",
		Name:       "Ryman Auditorium",
		URL:        "https://venues.example.com/v1",
		PostalCode: "37219",
		Timezone:   "America/Chicago",
		Address:    &discovery.Address{Line1: "116 Rep. John Lewis Way N"},
		City:       &discovery.Named{Name: "Nashville"},
		State:      &discovery.State{StateCode: "TN"},
		Location:   &discovery.Location{Latitude: "36.1612", Longitude: "-86.7785"},
		Images: []discovery.Image{
			{URL: "https://img.example.com/a.jpg", Ratio: "3_2"},
			{URL: "https://img.example.com/b.jpg", Width: 1024, Height: 576, Ratio: "16_9"},
		},
		BoxOfficeInfo: &discovery.BoxOfficeInfo{
			PhoneNumberDetail: &phone,
			OpenHoursDetail:   &hours,
		},
		ParkingDetail: &parking,
		GeneralInfo:   &discovery.GeneralInfo{GeneralRule: &rule},
		Social:        &discovery.Social{Twitter: &discovery.TwitterHandle{Handle: &handle}},
		Classifications: []discovery.Classification{
			{Segment: &discovery.Named{Name: "Music"}},
		},
		Capacity:       json.RawMessage(`"2362"`),
		UpcomingEvents: &discovery.UpcomingEvents{Total: 12},
	}

	got := a.normalize(&raw, 36.1627, -86.7816)

	if got.ImageURL == nil || *got.ImageURL != "https://img.example.com/b.jpg" {
		t.Errorf("ImageURL = %v, want the 16:9 image", got.ImageURL)
	}
	if got.Address != "116 Rep. John Lewis Way N, Nashville, TN, 37219" {
		t.Errorf("Address = %q", got.Address)
	}
	if got.Latitude == nil || *got.Latitude != 36.1612 {
		t.Errorf("Latitude = %v", got.Latitude)
	}
	if got.Coordinates != "36.1612,-86.7785" {
		t.Errorf("Coordinates = %q", got.Coordinates)
	}
	if got.DistanceFromSearch == nil || *got.DistanceFromSearch < 0 {
		t.Errorf("DistanceFromSearch = %v", got.DistanceFromSearch)
	}
	if got.ContactPhone == nil || *got.ContactPhone != phone {
		t.Errorf("ContactPhone = %v", got.ContactPhone)
	}
	if got.Capacity == nil || *got.Capacity != 2362 {
		t.Errorf("Capacity = %v, want 2362 from string-encoded capacity", got.Capacity)
	}
	if got.UpcomingEventsCount != 12 {
		t.Errorf("UpcomingEventsCount = %d", got.UpcomingEventsCount)
	}
	if got.VenueType != "Music" {
		t.Errorf("VenueType = %q", got.VenueType)
	}
	if got.TwitterHandle == nil || *got.TwitterHandle != handle {
		t.Errorf("TwitterHandle = %v", got.TwitterHandle)
	}
}

func TestNormalizeBareRecord(t *testing.T) {
	a := NewAggregator(&fakeVenueSearcher{}, zerolog.Nop())

	got := a.normalize(&discovery.RawVenue{ID: "v2", Name: "Mystery Hall"}, 36.1627, -86.7816)

	if got.ImageURL != nil {
		t.Errorf("ImageURL = %v, want nil", got.ImageURL)
	}
	if got.DistanceFromSearch != nil {
		t.Errorf("DistanceFromSearch = %v, want nil without coordinates", got.DistanceFromSearch)
	}
	if got.VenueType != "Other" {
		t.Errorf("VenueType = %q, want Other", got.VenueType)
	}
	if got.Capacity != nil {
		t.Errorf("Capacity = %v, want nil", got.Capacity)
	}
}

func TestBestImage(t *testing.T) {
	tests := []struct {
		name string
		imgs []discovery.Image
		want string
	}{
		{
			name: "16:9 wins over earlier ratios",
			imgs: []discovery.Image{
				{URL: "a", Ratio: "4_3"},
				{URL: "b", Ratio: "16_9"},
			},
			want: "b",
		},
		{
			name: "4:3 beats other ratios",
			imgs: []discovery.Image{
				{URL: "a", Ratio: "3_2"},
				{URL: "b", Ratio: "4_3"},
			},
			want: "b",
		},
		{
			name: "first image as a last resort",
			imgs: []discovery.Image{
				{URL: "a", Ratio: "3_2"},
				{URL: "b", Ratio: "3_2"},
			},
			want: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bestImage(tt.imgs)
			if got == nil || got.URL != tt.want {
				t.Errorf("bestImage() = %v, want URL %q", got, tt.want)
			}
		})
	}

	if bestImage(nil) != nil {
		t.Error("bestImage(nil) should be nil")
	}
}

func TestParseCapacity(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *int
	}{
		{"number", `2362`, intPtr(2362)},
		{"quoted number", `"2362"`, intPtr(2362)},
		{"garbage", `"lots"`, nil},
		{"absent", ``, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseCapacity(json.RawMessage(tt.raw))
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("parseCapacity(%q) = %d, want nil", tt.raw, *got)
			case tt.want != nil && (got == nil || *got != *tt.want):
				t.Errorf("parseCapacity(%q) = %v, want %d", tt.raw, got, *tt.want)
			}
		})
	}
}

func TestSortVenues(t *testing.T) {
	near, far := 1.5, 9.9
	img := "https://img.example.com/v.jpg"
	phone := "(615) 555-0100"

	busy := venue.Venue{Name: "busy", UpcomingEventsCount: 20}
	complete := venue.Venue{Name: "complete", ImageURL: &img, ContactPhone: &phone, Address: "somewhere"}
	sparseNear := venue.Venue{Name: "sparse-near", DistanceFromSearch: &near}
	sparseFar := venue.Venue{Name: "sparse-far", DistanceFromSearch: &far}
	noDistance := venue.Venue{Name: "no-distance"}

	list := []venue.Venue{noDistance, sparseFar, complete, busy, sparseNear}
	sortVenues(list)

	want := []string{"busy", "complete", "sparse-near", "sparse-far", "no-distance"}
	for i := range want {
		if list[i].Name != want[i] {
			names := make([]string, len(list))
			for j := range list {
				names[j] = list[j].Name
			}
			t.Fatalf("order = %v, want %v", names, want)
		}
	}
}

func intPtr(n int) *int { return &n }
