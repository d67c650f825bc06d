package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lp-server/api/places"
	"lp-server/cache"
	"lp-server/db"
	"lp-server/models"
	"lp-server/ratelimit"
)

const (
	testCapacity = 10
	testInterval = 60 * time.Second
	testTTL      = 2 * time.Minute
)

func newMockSearchService() *SearchService {
	store := db.NewMemoryKVStore()
	return NewSearchService(
		ratelimit.NewRateLimiter(store, testCapacity, testInterval, testTTL),
		cache.NewResponseCache(store),
		NewPlaceScorer(),
		places.NewPlacesApiClientMock(),
		true,
		600, 120,
	)
}

func tokyoRequest() models.SearchRequest {
	return models.SearchRequest{
		Location: models.LatLng{Lat: 35.681236, Lng: 139.767125},
		RadiusM:  1200,
		Cuisine:  []string{},
		Limit:    5,
	}
}

func TestSearch_MockEndToEnd(t *testing.T) {
	svc := newMockSearchService()

	resp, meta, err := svc.Search(context.Background(), "client-a", tokyoRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.True(t, meta.MockData)
	assert.False(t, meta.CacheHit)
	require.Len(t, resp.Results, 5)

	for i, r := range resp.Results {
		if r.DistanceM > 1000 {
			t.Errorf("Result %d lies %d m away; synthetic results are bounded at 1000 m", i, r.DistanceM)
		}
		if i > 0 && resp.Results[i-1].Score < r.Score {
			t.Errorf("Results not sorted by descending score at index %d", i)
		}
		if r.Score < 0 || r.Score > 1 {
			t.Errorf("Result %d score %f out of [0,1]", i, r.Score)
		}
	}
}

func TestSearch_SecondIdenticalRequestIsACacheHit(t *testing.T) {
	svc := newMockSearchService()
	ctx := context.Background()

	first, meta1, err := svc.Search(ctx, "client-a", tokyoRequest())
	require.NoError(t, err)
	require.False(t, meta1.CacheHit)

	second, meta2, err := svc.Search(ctx, "client-a", tokyoRequest())
	require.NoError(t, err)
	assert.True(t, meta2.CacheHit)

	assert.True(t, first.CachedAt.Equal(second.CachedAt),
		"a cache hit must return the original capture timestamp")
	assert.Equal(t, first.Results, second.Results)
}

func TestSearch_CuisineOrderDoesNotSplitTheCache(t *testing.T) {
	svc := newMockSearchService()
	ctx := context.Background()

	reqA := tokyoRequest()
	reqA.Cuisine = []string{"ramen", "sushi"}
	reqB := tokyoRequest()
	reqB.Cuisine = []string{"sushi", "ramen"}

	first, _, err := svc.Search(ctx, "client-a", reqA)
	require.NoError(t, err)

	second, meta, err := svc.Search(ctx, "client-a", reqB)
	require.NoError(t, err)
	assert.True(t, meta.CacheHit, "reordered cuisine must hit the same cache entry")
	assert.True(t, first.CachedAt.Equal(second.CachedAt))
}

func TestSearch_EleventhRequestIsRejected(t *testing.T) {
	svc := newMockSearchService()
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, _, err := svc.Search(ctx, "client-a", tokyoRequest())
		require.NoError(t, err, "request %d should be within budget", i+1)
	}

	_, _, err := svc.Search(ctx, "client-a", tokyoRequest())
	var rateErr *models.RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Greater(t, rateErr.RetryAfterSeconds, 0)
}

func TestSearch_ValidationFailureStopsBeforeRateLimiting(t *testing.T) {
	svc := newMockSearchService()

	req := tokyoRequest()
	req.RadiusM = -5

	_, _, err := svc.Search(context.Background(), "client-a", req)
	var valErr *models.ValidationError
	require.ErrorAs(t, err, &valErr)
}

// failingPlacesAPI simulates an upstream outage.
type failingPlacesAPI struct{}

func (f *failingPlacesAPI) SearchNearby(ctx context.Context, req models.SearchRequest) ([]models.RawPlace, error) {
	return nil, &models.UpstreamError{StatusCode: 502, Msg: "bad gateway"}
}

func TestSearch_UpstreamFailureSurfacesAsIs(t *testing.T) {
	store := db.NewMemoryKVStore()
	svc := NewSearchService(
		ratelimit.NewRateLimiter(store, testCapacity, testInterval, testTTL),
		cache.NewResponseCache(store),
		NewPlaceScorer(),
		&failingPlacesAPI{},
		false,
		600, 120,
	)

	_, _, err := svc.Search(context.Background(), "client-a", tokyoRequest())
	var upstreamErr *models.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, 502, upstreamErr.StatusCode)
}

// brokenKVStore fails every operation, simulating an unavailable store.
type brokenKVStore struct{}

func (b *brokenKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, errors.New("store unavailable")
}
func (b *brokenKVStore) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, errors.New("store unavailable")
}
func (b *brokenKVStore) Put(ctx context.Context, key, value string, ttl time.Duration) error {
	return errors.New("store unavailable")
}
func (b *brokenKVStore) Delete(ctx context.Context, key string) error {
	return errors.New("store unavailable")
}
func (b *brokenKVStore) Ping(ctx context.Context) error {
	return errors.New("store unavailable")
}

func TestSearch_BrokenStoreDegradesButStillResponds(t *testing.T) {
	store := &brokenKVStore{}
	svc := NewSearchService(
		ratelimit.NewRateLimiter(store, testCapacity, testInterval, testTTL),
		cache.NewResponseCache(store),
		NewPlaceScorer(),
		places.NewPlacesApiClientMock(),
		true,
		600, 120,
	)

	resp, meta, err := svc.Search(context.Background(), "client-a", tokyoRequest())
	require.NoError(t, err, "a broken store must never fail a request")
	require.NotNil(t, resp)
	assert.False(t, meta.CacheHit)
	assert.Len(t, resp.Results, 5)
}
