package models

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func validRequest() SearchRequest {
	return SearchRequest{
		Location: LatLng{Lat: 35.681236, Lng: 139.767125},
		RadiusM:  1200,
	}
}

func TestNormalize_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *SearchRequest)
	}{
		{"NaN latitude", func(r *SearchRequest) { r.Location.Lat = math.NaN() }},
		{"Inf longitude", func(r *SearchRequest) { r.Location.Lng = math.Inf(1) }},
		{"latitude above range", func(r *SearchRequest) { r.Location.Lat = 90.1 }},
		{"latitude below range", func(r *SearchRequest) { r.Location.Lat = -90.1 }},
		{"longitude above range", func(r *SearchRequest) { r.Location.Lng = 180.1 }},
		{"longitude below range", func(r *SearchRequest) { r.Location.Lng = -180.1 }},
		{"zero radius", func(r *SearchRequest) { r.RadiusM = 0 }},
		{"negative radius", func(r *SearchRequest) { r.RadiusM = -5 }},
		{"NaN radius", func(r *SearchRequest) { r.RadiusM = math.NaN() }},
		{"NaN budget", func(r *SearchRequest) { r.Budget = &Budget{Max: math.NaN()} }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := validRequest()
			test.mutate(&req)

			err := req.Normalize()
			if err == nil {
				t.Fatal("Expected a validation error")
			}
			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Errorf("Expected *ValidationError, got %T", err)
			}
		})
	}
}

func TestNormalize_ClampsRadius(t *testing.T) {
	req := validRequest()
	req.RadiusM = 60000

	if err := req.Normalize(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if req.RadiusM != MAX_RADIUS_M {
		t.Errorf("Expected radius clamped to %f, got %f", MAX_RADIUS_M, req.RadiusM)
	}
}

func TestNormalize_LimitDefaultsAndClamps(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero defaults", 0, DEFAULT_LIMIT},
		{"negative clamps to one", -3, 1},
		{"above maximum clamps", 25, MAX_LIMIT},
		{"in range untouched", 7, 7},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := validRequest()
			req.Limit = test.limit

			if err := req.Normalize(); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if req.Limit != test.want {
				t.Errorf("Expected limit %d, got %d", test.want, req.Limit)
			}
		})
	}
}

func TestNormalize_CleansCuisine(t *testing.T) {
	req := validRequest()
	req.Cuisine = []string{" Ramen ", "", "SUSHI", "  "}

	if err := req.Normalize(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := []string{"ramen", "sushi"}
	if !reflect.DeepEqual(req.Cuisine, want) {
		t.Errorf("Expected cuisine %v, got %v", want, req.Cuisine)
	}
}

func TestNormalize_BoundaryCoordinatesAccepted(t *testing.T) {
	req := validRequest()
	req.Location = LatLng{Lat: -90, Lng: 180}

	if err := req.Normalize(); err != nil {
		t.Errorf("Expected boundary coordinates to pass, got %v", err)
	}
}
