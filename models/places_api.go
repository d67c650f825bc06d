package models

// Wire shapes of the upstream places provider (searchNearby).

type SearchNearbyRequest struct {
	IncludedTypes       []string            `json:"includedTypes"`
	MaxResultCount      int                 `json:"maxResultCount"`
	LanguageCode        string              `json:"languageCode"`
	LocationRestriction LocationRestriction `json:"locationRestriction"`
}

type LocationRestriction struct {
	Circle Circle `json:"circle"`
}

type Circle struct {
	Center Center  `json:"center"`
	Radius float64 `json:"radius"`
}

type Center struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type SearchNearbyResponse struct {
	Places []UpstreamPlace `json:"places"`
}

type UpstreamPlace struct {
	ID                  string         `json:"id"`
	DisplayName         LocalizedText  `json:"displayName"`
	Rating              *float64       `json:"rating,omitempty"`
	PriceLevel          *string        `json:"priceLevel,omitempty"`
	CurrentOpeningHours *OpeningHours  `json:"currentOpeningHours,omitempty"`
	Location            *Center        `json:"location,omitempty"`
	GoogleMapsURI       string         `json:"googleMapsUri,omitempty"`
	FormattedAddress    string         `json:"formattedAddress,omitempty"`
	Types               []string       `json:"types,omitempty"`
}

type LocalizedText struct {
	Text string `json:"text"`
}

type OpeningHours struct {
	// OpenNow is tri-state: true, false, or unknown when absent.
	OpenNow *bool `json:"openNow,omitempty"`
}

// ToRawPlace converts an upstream record into the provider-agnostic shape.
func (p UpstreamPlace) ToRawPlace() RawPlace {
	raw := RawPlace{
		ID:         p.ID,
		Name:       p.DisplayName.Text,
		Rating:     p.Rating,
		PriceLevel: p.PriceLevel,
		MapsURL:    p.GoogleMapsURI,
		Address:    p.FormattedAddress,
		Tags:       p.Types,
	}
	if p.CurrentOpeningHours != nil {
		raw.OpenNow = p.CurrentOpeningHours.OpenNow
	}
	if p.Location != nil {
		raw.Location = &LatLng{Lat: p.Location.Latitude, Lng: p.Location.Longitude}
	}
	return raw
}
