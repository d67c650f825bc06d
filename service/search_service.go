package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"lp-server/api/places"
	"lp-server/cache"
	"lp-server/models"
	"lp-server/ratelimit"
)

// Meta describes how a search response was produced.
type Meta struct {
	CacheHit bool
	MockData bool
}

// SearchService orchestrates a search request end to end:
// validate -> rate-limit -> cache lookup -> fetch -> normalize -> cache
// store -> respond. A cache hit short-circuits straight to the response;
// validation, rate-limit and upstream failures terminate immediately.
type SearchService struct {
	limiter         *ratelimit.RateLimiter
	responseCache   *cache.ResponseCache
	scorer          *PlaceScorer
	placesAPI       places.PlacesAPI
	mockData        bool
	cacheTTLSec     int
	mockCacheTTLSec int
	now             func() time.Time
}

// NewSearchService constructs the orchestrator. mockData reports whether
// placesAPI synthesizes results; it selects the shorter cache TTL and the
// mock indicator on responses.
func NewSearchService(
	limiter *ratelimit.RateLimiter,
	responseCache *cache.ResponseCache,
	scorer *PlaceScorer,
	placesAPI places.PlacesAPI,
	mockData bool,
	cacheTTLSec, mockCacheTTLSec int,
) *SearchService {
	return &SearchService{
		limiter:         limiter,
		responseCache:   responseCache,
		scorer:          scorer,
		placesAPI:       placesAPI,
		mockData:        mockData,
		cacheTTLSec:     cacheTTLSec,
		mockCacheTTLSec: mockCacheTTLSec,
		now:             time.Now,
	}
}

// Search handles one request for the given client identity. Errors are
// typed: *models.ValidationError, *models.RateLimitError or
// *models.UpstreamError; no retries are performed at this layer.
func (s *SearchService) Search(ctx context.Context, clientKey string, req models.SearchRequest) (*models.CachedSearchResponse, Meta, error) {
	meta := Meta{MockData: s.mockData}

	if err := req.Normalize(); err != nil {
		return nil, meta, err
	}

	if dec := s.limiter.Consume(ctx, clientKey); !dec.Allowed {
		log.Info().Str("client_key", clientKey).Int("retry_after_s", dec.RetryAfterSeconds).
			Msg("request budget exhausted")
		return nil, meta, &models.RateLimitError{RetryAfterSeconds: dec.RetryAfterSeconds}
	}

	key := cache.CanonicalKey(req)
	if cached := s.responseCache.Get(ctx, key); cached != nil {
		meta.CacheHit = true
		log.Debug().Str("cache_key", key).Msg("serving cached response")
		return cached, meta, nil
	}

	raw, err := s.placesAPI.SearchNearby(ctx, req)
	if err != nil {
		return nil, meta, err
	}

	resp := &models.CachedSearchResponse{
		Results:  s.scorer.Normalize(raw, req),
		CachedAt: s.now().UTC(),
	}

	ttl := s.cacheTTLSec
	if s.mockData {
		ttl = s.mockCacheTTLSec
	}
	// a failed store write degrades to an uncached response, never an error
	if err := s.responseCache.Put(ctx, key, resp, ttl); err != nil {
		log.Warn().Err(err).Str("cache_key", key).Msg("failed to cache search response")
	}

	return resp, meta, nil
}
