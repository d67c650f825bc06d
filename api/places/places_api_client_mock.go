package places

import (
	"context"
	"fmt"
	"math"
	"unicode"

	"lp-server/geo"
	"lp-server/models"
)

// Synthetic results stay within walking distance regardless of the
// requested radius, so placeholder maps look plausible.
const (
	MOCK_MAX_DISTANCE_M  = 1000.0
	MOCK_DISTANCE_STEP_M = 75.0
)

// fallbackLabels decorate template names when the request carries no
// cuisine keywords.
var fallbackLabels = []string{"Teishoku", "Ramen", "Cafe", "Bistro", "Curry"}

func boolPtr(b bool) *bool { return &b }

// defaultCatalog is the built-in template catalog; it can be overridden
// with resources/mock_catalog.json.
var defaultCatalog = []models.PlaceTemplate{
	{Name: "Kitchen", BaseDistanceM: 120, BearingDeg: 30, Rating: 4.5, PriceLevel: models.PRICE_LEVEL_MODERATE, OpenNow: boolPtr(true), Address: "1-2-3 Marunouchi", Tags: []string{"restaurant", "casual"}},
	{Name: "Diner", BaseDistanceM: 260, BearingDeg: 95, Rating: 4.1, PriceLevel: models.PRICE_LEVEL_INEXPENSIVE, OpenNow: boolPtr(true), Address: "2-4-1 Yaesu", Tags: []string{"restaurant", "diner"}},
	{Name: "Table", BaseDistanceM: 340, BearingDeg: 160, Rating: 3.8, PriceLevel: models.PRICE_LEVEL_EXPENSIVE, Address: "5-1-8 Ginza", Tags: []string{"restaurant", "dining"}},
	{Name: "Stand", BaseDistanceM: 450, BearingDeg: 210, Rating: 4.3, PriceLevel: models.PRICE_LEVEL_INEXPENSIVE, OpenNow: boolPtr(true), Address: "3-2-2 Nihonbashi", Tags: []string{"restaurant", "quick"}},
	{Name: "House", BaseDistanceM: 600, BearingDeg: 280, Rating: 3.6, PriceLevel: models.PRICE_LEVEL_VERY_EXPENSIVE, OpenNow: boolPtr(false), Address: "1-9-6 Kyobashi", Tags: []string{"restaurant", "formal"}},
	{Name: "Corner", BaseDistanceM: 780, BearingDeg: 330, Rating: 4.8, PriceLevel: models.PRICE_LEVEL_MODERATE, OpenNow: boolPtr(true), Address: "4-5-10 Kanda", Tags: []string{"restaurant", "cozy"}},
}

// PlacesApiClientMock synthesizes a deterministic result set with accurate
// geographic displacement. Used when no upstream credential is configured.
type PlacesApiClientMock struct {
	catalog []models.PlaceTemplate
}

// NewPlacesApiClientMock creates a generator over the built-in catalog.
func NewPlacesApiClientMock() *PlacesApiClientMock {
	return &PlacesApiClientMock{catalog: defaultCatalog}
}

// NewPlacesApiClientMockWithCatalog creates a generator over a custom
// catalog, falling back to the built-in one when empty.
func NewPlacesApiClientMockWithCatalog(catalog []models.PlaceTemplate) *PlacesApiClientMock {
	if len(catalog) == 0 {
		catalog = defaultCatalog
	}
	return &PlacesApiClientMock{catalog: catalog}
}

// SearchNearby produces up to req.Limit synthetic places, cycling the
// catalog when the limit exceeds its size. Template names are decorated
// round-robin with the requested cuisine keywords.
func (c *PlacesApiClientMock) SearchNearby(ctx context.Context, req models.SearchRequest) ([]models.RawPlace, error) {
	clampedRadius := math.Min(req.RadiusM, MOCK_MAX_DISTANCE_M)

	raw := make([]models.RawPlace, 0, req.Limit)
	for i := 0; i < req.Limit; i++ {
		tmpl := c.catalog[i%len(c.catalog)]
		distance := math.Min(clampedRadius, tmpl.BaseDistanceM+float64(i)*MOCK_DISTANCE_STEP_M)
		lat, lng := geo.Displace(req.Location.Lat, req.Location.Lng, distance, tmpl.BearingDeg)

		label := fallbackLabels[i%len(fallbackLabels)]
		tags := tmpl.Tags
		if len(req.Cuisine) > 0 {
			keyword := req.Cuisine[i%len(req.Cuisine)]
			label = titleLabel(keyword)
			// the decorated keyword also tags the place so the cuisine
			// filter downstream keeps it
			tags = append(append([]string{}, tmpl.Tags...), keyword)
		}

		rating := tmpl.Rating
		priceLevel := tmpl.PriceLevel
		raw = append(raw, models.RawPlace{
			ID:         fmt.Sprintf("mock-place-%d", i+1),
			Name:       fmt.Sprintf("%s %s", label, tmpl.Name),
			Rating:     &rating,
			PriceLevel: &priceLevel,
			OpenNow:    tmpl.OpenNow,
			Location:   &models.LatLng{Lat: lat, Lng: lng},
			MapsURL:    fmt.Sprintf("https://maps.google.com/?q=%.6f,%.6f", lat, lng),
			Address:    tmpl.Address,
			Tags:       tags,
		})
	}
	return raw, nil
}

func titleLabel(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
