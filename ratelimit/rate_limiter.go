// Package ratelimit implements token-bucket admission control keyed by
// client identity, with bucket state persisted in a shared key-value store.
package ratelimit

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"lp-server/db"
)

const BUCKET_KEY_FORMAT_V1 = "rate_bucket_v1:%s"

// Decision is the outcome of a consumption attempt. RetryAfterSeconds is
// zero when the request is allowed.
type Decision struct {
	Allowed           bool
	RetryAfterSeconds int
}

// bucket is the stored per-key state. UpdatedAtMs always reflects the most
// recent observation, not the last successful consumption.
type bucket struct {
	Tokens      float64 `json:"tokens"`
	UpdatedAtMs int64   `json:"updated_at_ms"`
}

// RateLimiter is a continuous token bucket: each key holds up to capacity
// tokens, refilling at capacity tokens per interval. Every admitted request
// consumes exactly one token.
type RateLimiter struct {
	store     db.KVStore
	capacity  float64
	interval  time.Duration
	bucketTTL time.Duration
	now       func() time.Time
}

// NewRateLimiter constructs a limiter over the given store. bucketTTL is
// the idle expiry of stored buckets; an expired bucket reappears full.
func NewRateLimiter(store db.KVStore, capacity int, interval, bucketTTL time.Duration) *RateLimiter {
	return &RateLimiter{
		store:     store,
		capacity:  float64(capacity),
		interval:  interval,
		bucketTTL: bucketTTL,
		now:       time.Now,
	}
}

// Consume attempts to take one token for key. Store failures and corrupt
// records are treated as an absent bucket and reinitialized at full
// capacity; a degraded store must never starve a legitimate client.
func (rl *RateLimiter) Consume(ctx context.Context, key string) Decision {
	nowMs := rl.now().UnixMilli()
	storeKey := fmt.Sprintf(BUCKET_KEY_FORMAT_V1, key)

	var b bucket
	found, err := rl.store.GetJSON(ctx, storeKey, &b)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("unreadable rate bucket, reinitializing at full capacity")
	}
	if err != nil || !found {
		b = bucket{Tokens: rl.capacity, UpdatedAtMs: nowMs}
	}

	intervalMs := float64(rl.interval.Milliseconds())
	elapsedMs := float64(nowMs - b.UpdatedAtMs)
	if elapsedMs < 0 {
		elapsedMs = 0
	}
	tokens := math.Min(rl.capacity, b.Tokens+elapsedMs/intervalMs*rl.capacity)

	var decision Decision
	if tokens < 1 {
		retryAfter := int(math.Ceil((1 - tokens) / rl.capacity * intervalMs / 1000))
		decision = Decision{Allowed: false, RetryAfterSeconds: retryAfter}
	} else {
		tokens--
		decision = Decision{Allowed: true}
	}

	rl.persist(ctx, storeKey, bucket{Tokens: tokens, UpdatedAtMs: nowMs})
	return decision
}

// persist writes the refreshed bucket state regardless of the decision.
// A write failure does not change the decision already taken.
func (rl *RateLimiter) persist(ctx context.Context, storeKey string, b bucket) {
	data, err := json.Marshal(b)
	if err != nil {
		log.Error().Err(err).Str("store_key", storeKey).Msg("failed to marshal rate bucket")
		return
	}
	if err := rl.store.Put(ctx, storeKey, string(data), rl.bucketTTL); err != nil {
		log.Warn().Err(err).Str("store_key", storeKey).Msg("failed to persist rate bucket")
	}
}
