// Package cache deduplicates identical searches through a TTL-bound
// response cache keyed by a canonical form of the request.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"lp-server/db"
	"lp-server/models"
)

const SEARCH_RESPONSE_KEY_FORMAT_V1 = "search_v1:%s:%s:%d:%s:%s"

// NO_BUDGET_SENTINEL marks the budget segment of a key when the request
// carries no spending ceiling.
const NO_BUDGET_SENTINEL = "-"

// ResponseCache stores prior search responses in the shared KV store.
type ResponseCache struct {
	store db.KVStore
}

func NewResponseCache(store db.KVStore) *ResponseCache {
	return &ResponseCache{store: store}
}

// CanonicalKey derives the cache key from the semantically relevant request
// fields. Coordinates are rounded to 4 decimal places (~11 m), so requests
// within that cell share a key; the cuisine set is sorted, so keyword order
// never splits the cache. The request must already be normalized.
func CanonicalKey(req models.SearchRequest) string {
	cuisine := make([]string, len(req.Cuisine))
	copy(cuisine, req.Cuisine)
	sort.Strings(cuisine)

	budget := NO_BUDGET_SENTINEL
	if req.Budget != nil {
		budget = strconv.FormatFloat(req.Budget.Max, 'f', -1, 64)
	}

	return fmt.Sprintf(SEARCH_RESPONSE_KEY_FORMAT_V1,
		strconv.FormatFloat(round4(req.Location.Lat), 'f', 4, 64),
		strconv.FormatFloat(round4(req.Location.Lng), 'f', 4, 64),
		int(req.RadiusM),
		strings.Join(cuisine, ","),
		budget,
	)
}

// Get returns the cached response for key, or nil on a miss. Store or
// decode failures degrade to a miss and are never fatal.
func (c *ResponseCache) Get(ctx context.Context, key string) *models.CachedSearchResponse {
	var resp models.CachedSearchResponse
	found, err := c.store.GetJSON(ctx, key, &resp)
	if err != nil {
		log.Warn().Err(err).Str("cache_key", key).Msg("cache read failed, treating as miss")
		return nil
	}
	if !found {
		return nil
	}
	return &resp
}

// Put stores the response under key with the given TTL in seconds.
func (c *ResponseCache) Put(ctx context.Context, key string, resp *models.CachedSearchResponse, ttlSeconds int) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal search response: %w", err)
	}
	ttl := time.Duration(ttlSeconds) * time.Second
	if err := c.store.Put(ctx, key, string(data), ttl); err != nil {
		return fmt.Errorf("failed to store search response: %w", err)
	}
	return nil
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
