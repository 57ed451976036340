package discovery

import "encoding/json"

// EventsResponse is a single page of the events search endpoint.
type EventsResponse struct {
	Embedded *EventsEmbedded `json:"_embedded"`
	Page     *Page           `json:"page"`
}

// EventsEmbedded wraps the event collection of a page.
type EventsEmbedded struct {
	Events []RawEvent `json:"events"`
}

// VenuesResponse is a single page of the venues search endpoint.
type VenuesResponse struct {
	Embedded *VenuesEmbedded `json:"_embedded"`
	Page     *Page           `json:"page"`
}

// VenuesEmbedded wraps the venue collection of a page.
type VenuesEmbedded struct {
	Venues []RawVenue `json:"venues"`
}

// Page carries the upstream pagination envelope.
type Page struct {
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
}

// RawEvent is an upstream event record. Optional nested structures stay nil
// when the upstream omits them.
type RawEvent struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	URL             string           `json:"url"`
	Info            string           `json:"info"`
	Images          []Image          `json:"images"`
	Dates           *Dates           `json:"dates"`
	Classifications []Classification `json:"classifications"`
	PriceRanges     []PriceRange     `json:"priceRanges"`
	Embedded        *EventEmbedded   `json:"_embedded"`
}

// EventEmbedded holds the venues embedded in an event record.
type EventEmbedded struct {
	Venues []RawVenue `json:"venues"`
}

// Image is an upstream image descriptor.
type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Ratio  string `json:"ratio"`
	Size   string `json:"size"`
}

// Dates groups an event's schedule and sale status.
type Dates struct {
	Start  *DateStart `json:"start"`
	Status *Status    `json:"status"`
}

// DateStart is the local start date and time of an event.
type DateStart struct {
	LocalDate string `json:"localDate"`
	LocalTime string `json:"localTime"`
}

// Status carries the upstream sale-status code.
type Status struct {
	Code string `json:"code"`
}

// Classification is one upstream genre classification.
type Classification struct {
	Segment *Named `json:"segment"`
}

// Named is a generic upstream object exposing only a name.
type Named struct {
	Name string `json:"name"`
}

// PriceRange is one upstream price range.
type PriceRange struct {
	Currency string   `json:"currency"`
	Min      *float64 `json:"min"`
	Max      *float64 `json:"max"`
}

// RawVenue is an upstream venue record.
type RawVenue struct {
	ID                      string           `json:"id"`
	Name                    string           `json:"name"`
	URL                     string           `json:"url"`
	PostalCode              string           `json:"postalCode"`
	Timezone                string           `json:"timezone"`
	Address                 *Address         `json:"address"`
	City                    *Named           `json:"city"`
	State                   *State           `json:"state"`
	Location                *Location        `json:"location"`
	Images                  []Image          `json:"images"`
	BoxOfficeInfo           *BoxOfficeInfo   `json:"boxOfficeInfo"`
	ParkingDetail           *string          `json:"parkingDetail"`
	AccessibleSeatingDetail *string          `json:"accessibleSeatingDetail"`
	GeneralInfo             *GeneralInfo     `json:"generalInfo"`
	Social                  *Social          `json:"social"`
	Classifications         []Classification `json:"classifications"`
	Capacity                json.RawMessage  `json:"capacity"`
	UpcomingEvents          *UpcomingEvents  `json:"upcomingEvents"`
}

// Address is the street portion of a venue address.
type Address struct {
	Line1 string `json:"line1"`
}

// State carries the upstream state code.
type State struct {
	StateCode string `json:"stateCode"`
}

// Location holds venue coordinates. The upstream encodes them as strings.
type Location struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// BoxOfficeInfo groups box-office contact details.
type BoxOfficeInfo struct {
	PhoneNumberDetail     *string `json:"phoneNumberDetail"`
	OpenHoursDetail       *string `json:"openHoursDetail"`
	AcceptedPaymentDetail *string `json:"acceptedPaymentDetail"`
	WillCallDetail        *string `json:"willCallDetail"`
}

// GeneralInfo groups venue house rules.
type GeneralInfo struct {
	GeneralRule *string `json:"generalRule"`
	ChildRule   *string `json:"childRule"`
}

// Social holds venue social-media handles.
type Social struct {
	Twitter *TwitterHandle `json:"twitter"`
}

// TwitterHandle is a venue's Twitter account.
type TwitterHandle struct {
	Handle *string `json:"handle"`
}

// UpcomingEvents carries the upstream upcoming-events rollup.
type UpcomingEvents struct {
	Total int `json:"_total"`
}
