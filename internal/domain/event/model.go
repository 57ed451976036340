package event

// Impact levels assigned to events by the impact scorer.
const (
	LevelLow      = "Low"
	LevelMedium   = "Medium"
	LevelHigh     = "High"
	LevelCritical = "Critical"
)

// ImageCandidate is a raw image descriptor attached to an upstream record.
type ImageCandidate struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Ratio  string `json:"ratio"`
	Size   string `json:"size"`
}

// ImageMetadata duplicates the derived image attributes for API consumers
// that read them from a single sub-object.
type ImageMetadata struct {
	Quality     string  `json:"quality"`
	FileSize    string  `json:"fileSize"`
	AspectRatio float64 `json:"aspectRatio"`
	Pixels      int     `json:"pixels"`
	Priority    int     `json:"priority"`
}

// ImageResult is the outcome of best-image selection. It is never absent on a
// processed event: a placeholder is substituted when no valid candidate exists.
type ImageResult struct {
	URL         string
	Width       int
	Height      int
	Ratio       string
	Size        string
	Priority    int
	Quality     string
	FileSize    string
	AspectRatio float64
	Metadata    ImageMetadata
}

// Event is a normalized event record returned to callers. Created once per
// raw upstream record during aggregation and immutable afterwards.
type Event struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Venue       string  `json:"venue"`
	Address     string  `json:"address"`
	Category    string  `json:"category"`
	Price       string  `json:"price"`
	TicketURL   string  `json:"ticketUrl"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
	VenueTier   string  `json:"venueTier"`
	VenueType   string  `json:"venueType"`
	ImpactScore int     `json:"impactScore"`
	ImpactLevel string  `json:"impactLevel"`
	Distance    float64 `json:"distance"`

	EventImage       string           `json:"eventImage"`
	ImageURL         string           `json:"imageUrl"`
	ImageWidth       int              `json:"imageWidth"`
	ImageHeight      int              `json:"imageHeight"`
	ImageRatio       string           `json:"imageRatio"`
	ImageSize        string           `json:"imageSize"`
	ImageQuality     string           `json:"imageQuality"`
	ImageFileSize    string           `json:"imageFileSize"`
	ImageAspectRatio float64          `json:"imageAspectRatio"`
	ImagePriority    int              `json:"imagePriority"`
	AllImages        []ImageCandidate `json:"allImages"`
	ImageMetadata    ImageMetadata    `json:"imageMetadata"`
}

// ApplyImage copies a selected image result onto the event's flattened
// image fields.
func (e *Event) ApplyImage(img ImageResult) {
	e.EventImage = img.URL
	e.ImageURL = img.URL
	e.ImageWidth = img.Width
	e.ImageHeight = img.Height
	e.ImageRatio = img.Ratio
	e.ImageSize = img.Size
	e.ImageQuality = img.Quality
	e.ImageFileSize = img.FileSize
	e.ImageAspectRatio = img.AspectRatio
	e.ImagePriority = img.Priority
	e.ImageMetadata = img.Metadata
}
