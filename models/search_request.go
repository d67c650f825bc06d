package models

import (
	"math"
	"strings"
)

const (
	MAX_RADIUS_M  = 50000.0
	DEFAULT_LIMIT = 5
	MAX_LIMIT     = 20
)

// LatLng is a WGS84 coordinate in degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Budget carries an optional spending ceiling for a search.
type Budget struct {
	Max float64 `json:"max"`
}

// SearchRequest is the payload accepted by the search endpoint.
type SearchRequest struct {
	Location LatLng   `json:"location"`
	RadiusM  float64  `json:"radius_m"`
	Cuisine  []string `json:"cuisine,omitempty"`
	Budget   *Budget  `json:"budget,omitempty"`
	Limit    int      `json:"limit,omitempty"`
}

// Normalize validates the request in place and clamps numeric fields to
// their allowed ranges. After a nil return, all numeric fields are finite,
// radius_m is in (0, 50000], limit is in [1, 20] and cuisine keywords are
// lowercased with empties dropped.
func (r *SearchRequest) Normalize() error {
	if !isFinite(r.Location.Lat) || !isFinite(r.Location.Lng) {
		return &ValidationError{Msg: "location.lat and location.lng are required finite numbers"}
	}
	if r.Location.Lat < -90 || r.Location.Lat > 90 || r.Location.Lng < -180 || r.Location.Lng > 180 {
		return &ValidationError{Msg: "location is out of range"}
	}
	if !isFinite(r.RadiusM) || r.RadiusM <= 0 {
		return &ValidationError{Msg: "radius_m must be a positive number"}
	}
	if r.RadiusM > MAX_RADIUS_M {
		r.RadiusM = MAX_RADIUS_M
	}
	if r.Budget != nil && !isFinite(r.Budget.Max) {
		return &ValidationError{Msg: "budget.max must be a finite number"}
	}

	cleaned := make([]string, 0, len(r.Cuisine))
	for _, c := range r.Cuisine {
		c = strings.ToLower(strings.TrimSpace(c))
		if c != "" {
			cleaned = append(cleaned, c)
		}
	}
	r.Cuisine = cleaned

	switch {
	case r.Limit == 0:
		r.Limit = DEFAULT_LIMIT
	case r.Limit < 1:
		r.Limit = 1
	case r.Limit > MAX_LIMIT:
		r.Limit = MAX_LIMIT
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
