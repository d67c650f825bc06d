package models

import "fmt"

// Price level labels used by the upstream provider and the mock generator.
const (
	PRICE_LEVEL_FREE           = "PRICE_LEVEL_FREE"
	PRICE_LEVEL_INEXPENSIVE    = "PRICE_LEVEL_INEXPENSIVE"
	PRICE_LEVEL_MODERATE       = "PRICE_LEVEL_MODERATE"
	PRICE_LEVEL_EXPENSIVE      = "PRICE_LEVEL_EXPENSIVE"
	PRICE_LEVEL_VERY_EXPENSIVE = "PRICE_LEVEL_VERY_EXPENSIVE"
)

// RawPlace is the provider-agnostic shape of a candidate place before
// scoring. Both the live places client and the mock generator produce it.
type RawPlace struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Rating     *float64 `json:"rating,omitempty"`
	PriceLevel *string  `json:"price_level,omitempty"`
	OpenNow    *bool    `json:"open_now,omitempty"`
	Location   *LatLng  `json:"location,omitempty"`
	MapsURL    string   `json:"maps_url,omitempty"`
	Address    string   `json:"address,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

func (p *RawPlace) ToString() string {
	return fmt.Sprintf("RawPlace(id=%s, name=%s)", p.ID, p.Name)
}
