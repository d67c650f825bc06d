package models

import "time"

// SearchResult is a normalized, scored place returned to the caller.
type SearchResult struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Rating      *float64 `json:"rating"`
	DistanceM   int      `json:"distance_m"`
	PriceLevel  *string  `json:"price_level"`
	OpenNow     *bool    `json:"open_now"`
	Score       float64  `json:"score"`
	MapImageURL string   `json:"map_image_url"`
	MapsURL     string   `json:"maps_url"`
	Address     *string  `json:"address"`
	Tags        []string `json:"tags"`
}

// CachedSearchResponse is the payload stored in the response cache and
// returned from the search endpoint. A cache hit returns it unmodified.
type CachedSearchResponse struct {
	Results  []SearchResult `json:"results"`
	CachedAt time.Time      `json:"cached_at"`
}
