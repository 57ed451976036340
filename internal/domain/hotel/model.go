package hotel

// Config is a hotel's event-monitoring profile. The config endpoints echo
// these records without a backing store.
type Config struct {
	ID                      string `json:"id"`
	HotelName               string `json:"hotelName"`
	HotelAddress            string `json:"hotelAddress"`
	HotelCoordinates        string `json:"hotelCoordinates"`
	DefaultSearchRadius     int    `json:"defaultSearchRadius"`
	NotificationEmail       string `json:"notificationEmail"`
	HighImpactThreshold     int    `json:"highImpactThreshold"`
	CriticalImpactThreshold int    `json:"criticalImpactThreshold"`
	SyncFrequencyHours      int    `json:"syncFrequencyHours"`
	PricingSystemConnected  bool   `json:"pricingSystemConnected"`
}
