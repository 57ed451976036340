package events

// venueMetadata classifies a known venue by capacity tier and type.
type venueMetadata struct {
	Tier string
	Type string
}

// venueMetadataTable maps known venue names to their tier and type. Read-only
// after initialization; unknown venues fall back to ("Other Venue", "Other").
var venueMetadataTable = map[string]venueMetadata{
	"Nissan Stadium":                   {"Mega Venue (50,000+)", "Sports Venue"},
	"Bridgestone Arena":                {"Major Arena (15,000-25,000)", "Sports Venue"},
	"Grand Ole Opry House":             {"Large Theater (2,000-5,000)", "Country Music Heritage"},
	"Tennessee Performing Arts Center": {"Large Theater (2,000-5,000)", "Classical/Symphony"},
	"Ryman Auditorium":                 {"Medium Theater (1,000-2,500)", "Country Music Heritage"},
	"Schermerhorn Symphony Center":     {"Medium Theater (1,000-2,500)", "Classical/Symphony"},
	"Marathon Music Works":             {"Large Music Venue (1,000-2,000)", "Contemporary Music"},
	"Cannery Hall":                     {"Large Music Venue (1,000-2,000)", "Contemporary Music"},
	"Brooklyn Bowl":                    {"Large Music Venue (1,000-2,000)", "Contemporary Music"},
	"CMA Theater":                      {"Medium Music Venue (500-1,000)", "Contemporary Music"},
	"City Winery":                      {"Small Music Venue (100-500)", "Contemporary Music"},
	"The Country":                      {"Small Music Venue (100-500)", "Contemporary Music"},
	"Listening Room Cafe":              {"Small Music Venue (100-500)", "Songwriter Venue"},
	"Tin Roof":                         {"Small Music Venue (100-500)", "Contemporary Music"},
	"The Bluebird Cafe":                {"Intimate Venue (Under 200)", "Country Music Heritage"},
	"The Cobra":                        {"Intimate Venue (Under 200)", "Contemporary Music"},
	"Ascend Amphitheater":              {"Amphitheater", "Outdoor"},
	"Nashville Municipal Auditorium":   {"Multi-Purpose Venue", "Multi-Purpose/Historic"},
	"War Memorial Auditorium":          {"Multi-Purpose Venue", "Multi-Purpose/Historic"},
}

func metadataFor(name string) venueMetadata {
	if m, ok := venueMetadataTable[name]; ok {
		return m
	}
	return venueMetadata{Tier: "Other Venue", Type: "Other"}
}
