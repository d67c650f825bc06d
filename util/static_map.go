package util

import (
	"fmt"
	"net/url"
)

const STATIC_MAP_PATH_V1 = "/v1/staticmap"

// StaticMapURL builds the reference string resolved by the static-map image
// proxy. The image itself is never fetched here.
func StaticMapURL(lat, lng float64, placeID string) string {
	query := url.Values{}
	query.Set("lat", fmt.Sprintf("%.6f", lat))
	query.Set("lng", fmt.Sprintf("%.6f", lng))
	query.Set("place_id", placeID)
	return STATIC_MAP_PATH_V1 + "?" + query.Encode()
}
