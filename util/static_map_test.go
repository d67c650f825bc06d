package util

import "testing"

func TestStaticMapURL(t *testing.T) {
	got := StaticMapURL(35.6820, 139.7680, "place-1")
	want := "/v1/staticmap?lat=35.682000&lng=139.768000&place_id=place-1"
	if got != want {
		t.Errorf("StaticMapURL = %q; want %q", got, want)
	}
}

func TestCoordinateFromMapURL_RoundTrip(t *testing.T) {
	ref := StaticMapURL(35.6820, 139.7680, "place-1")
	lat, lng, ok := coordinateFromMapURL(ref)
	if !ok {
		t.Fatal("Expected the coordinate to be recoverable")
	}
	if lat != 35.682 || lng != 139.768 {
		t.Errorf("Recovered (%f, %f); want (35.682, 139.768)", lat, lng)
	}
}

func TestCoordinateFromMapURL_Invalid(t *testing.T) {
	if _, _, ok := coordinateFromMapURL("/v1/staticmap?place_id=p"); ok {
		t.Error("Expected a reference without coordinates to be rejected")
	}
}
