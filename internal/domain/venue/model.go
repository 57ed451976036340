package venue

// Venue is a normalized venue record returned to callers. Optional upstream
// fields stay nil so completeness scoring and JSON output can distinguish
// missing data from empty strings.
type Venue struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	URL                 string   `json:"url"`
	ImageURL            *string  `json:"image_url"`
	ImageWidth          *int     `json:"image_width"`
	ImageHeight         *int     `json:"image_height"`
	ImageRatio          *string  `json:"image_ratio"`
	Address             string   `json:"address"`
	Latitude            *float64 `json:"latitude"`
	Longitude           *float64 `json:"longitude"`
	Coordinates         string   `json:"coordinates"`
	DistanceFromSearch  *float64 `json:"distance_from_search"`
	ContactPhone        *string  `json:"contact_phone"`
	BoxOfficeHours      *string  `json:"box_office_hours"`
	AcceptedPayment     *string  `json:"accepted_payment"`
	WillCallInfo        *string  `json:"will_call_info"`
	ParkingInfo         *string  `json:"parking_info"`
	AccessibilityInfo   *string  `json:"accessibility_info"`
	GeneralRules        *string  `json:"general_rules"`
	ChildPolicy         *string  `json:"child_policy"`
	TwitterHandle       *string  `json:"twitter_handle"`
	VenueType           string   `json:"venue_type"`
	Capacity            *int     `json:"capacity"`
	Timezone            string   `json:"timezone"`
	PostalCode          string   `json:"postal_code"`
	UpcomingEventsCount int      `json:"upcoming_events_count"`

	// Legacy fields kept for dashboard compatibility.
	SeatingCapacity  *int   `json:"seating_capacity"`
	StandingCapacity *int   `json:"standing_capacity"`
	Tier             string `json:"tier"`
	ActivityLevel    string `json:"activity_level"`
	DataQualityScore string `json:"data_quality_score"`
}

// CompletenessScore counts populated optional descriptive fields. Used as the
// secondary sort key when venues tie on upcoming-events count; not serialized.
func (v *Venue) CompletenessScore() int {
	score := 0
	if v.Capacity != nil {
		score++
	}
	if v.ImageURL != nil {
		score++
	}
	if !isBlank(v.Address) {
		score++
	}
	if v.ContactPhone != nil {
		score++
	}
	if v.BoxOfficeHours != nil {
		score++
	}
	if v.ParkingInfo != nil {
		score++
	}
	if v.AccessibilityInfo != nil {
		score++
	}
	if v.GeneralRules != nil {
		score++
	}
	return score
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
