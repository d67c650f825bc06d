package db

import (
	"context"
	"time"
)

// KVStore is the key-value capability shared by the rate limiter and the
// response cache. Implementations must support per-entry TTLs; a zero TTL
// means no expiry.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	Put(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
