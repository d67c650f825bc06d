package places

import (
	"context"
	"errors"

	"golang.org/x/time/rate"

	"lp-server/api"
	"lp-server/models"
)

const SEARCH_NEARBY_ENDPOINT = "/v1/places:searchNearby"

// SEARCH_FIELD_MASK selects the response fields the pipeline consumes.
const SEARCH_FIELD_MASK = "places.id,places.displayName,places.rating," +
	"places.priceLevel,places.currentOpeningHours.openNow,places.location," +
	"places.googleMapsUri,places.formattedAddress,places.types"

// Outbound throttle towards the provider, shared across requests.
const (
	OUTBOUND_RATE_PER_SECOND = 10
	OUTBOUND_BURST           = 10
)

// PlacesApiClient embeds the common HTTPClient
type PlacesApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties

	apiKey       string
	languageCode string
	limiter      *rate.Limiter
}

// NewPlacesApiClient creates a new instance of PlacesApiClient
func NewPlacesApiClient(httpClient *api.HTTPClient, apiKey, languageCode string) *PlacesApiClient {
	return &PlacesApiClient{
		HTTPClient:   httpClient,
		apiKey:       apiKey,
		languageCode: languageCode,
		limiter:      rate.NewLimiter(rate.Limit(OUTBOUND_RATE_PER_SECOND), OUTBOUND_BURST),
	}
}

// SearchNearby fetches candidate places around the request origin and
// converts them into the provider-agnostic RawPlace shape. Failures are
// surfaced as UpstreamError; no retries are performed here.
func (c *PlacesApiClient) SearchNearby(ctx context.Context, req models.SearchRequest) ([]models.RawPlace, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &models.UpstreamError{Msg: err.Error()}
	}

	body := models.SearchNearbyRequest{
		IncludedTypes:  []string{"restaurant"},
		MaxResultCount: req.Limit,
		LanguageCode:   c.languageCode,
		LocationRestriction: models.LocationRestriction{
			Circle: models.Circle{
				Center: models.Center{
					Latitude:  req.Location.Lat,
					Longitude: req.Location.Lng,
				},
				Radius: req.RadiusM,
			},
		},
	}
	headers := map[string]string{
		"X-Goog-Api-Key":   c.apiKey,
		"X-Goog-FieldMask": SEARCH_FIELD_MASK,
	}

	var resp models.SearchNearbyResponse
	if err := c.Request(ctx, "POST", SEARCH_NEARBY_ENDPOINT, headers, body, &resp); err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) {
			return nil, &models.UpstreamError{StatusCode: statusErr.StatusCode, Msg: statusErr.Body}
		}
		return nil, &models.UpstreamError{Msg: err.Error()}
	}

	raw := make([]models.RawPlace, len(resp.Places))
	for i, p := range resp.Places {
		raw[i] = p.ToRawPlace()
	}
	return raw, nil
}
