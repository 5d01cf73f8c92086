package cache

import (
	"context"
	"time"
)

// Cache stores JSON-encoded values with a TTL. The candidate service keeps
// roster stats here so repeated list calls skip the aggregation pass.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
