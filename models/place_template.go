package models

// PlaceTemplate is one entry of the placeholder catalog used when no
// upstream credential is configured.
type PlaceTemplate struct {
	Name          string   `json:"name"`
	BaseDistanceM float64  `json:"base_distance_m"`
	BearingDeg    float64  `json:"bearing_deg"`
	Rating        float64  `json:"rating"`
	PriceLevel    string   `json:"price_level"`
	OpenNow       *bool    `json:"open_now"`
	Address       string   `json:"address,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}
