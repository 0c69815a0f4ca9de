// Package redis provides the Redis-backed tracking cache. Tracking numbers are
// immutable once assigned, so cached entries never need invalidation, only a
// TTL to bound memory.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

const trackingKeyPrefix = "tracking:"

// defaultTrackingTTL bounds cache memory; active deliveries are re-cached on
// the next lookup after expiry.
const defaultTrackingTTL = 24 * time.Hour

// TrackingCache implements the tracking cache port using Redis.
type TrackingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTrackingCache creates a Redis tracking cache from a URL in the format
// redis://[:password@]host[:port][/database]. A non-positive ttl falls back to
// the default of 24 hours.
func NewTrackingCache(redisURL string, ttl time.Duration) (*TrackingCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	return NewTrackingCacheWithClient(redis.NewClient(opts), ttl), nil
}

// NewTrackingCacheWithClient creates a tracking cache around an existing client.
func NewTrackingCacheWithClient(client *redis.Client, ttl time.Duration) *TrackingCache {
	if ttl <= 0 {
		ttl = defaultTrackingTTL
	}
	return &TrackingCache{client: client, ttl: ttl}
}

// Get returns the cached delivery identifier for the tracking number, or nil
// when the entry is absent.
func (c *TrackingCache) Get(ctx context.Context, trackingNumber kernel.TrackingNumber) (*kernel.UUID, error) {
	if err := trackingNumber.Validate(); err != nil {
		return nil, err
	}

	val, err := c.client.Get(ctx, trackingKeyPrefix+trackingNumber.String()).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tracking entry: %w", err)
	}

	id, err := kernel.UUIDFromString(val)
	if err != nil {
		// A corrupt entry behaves like a miss; the next Set overwrites it.
		return nil, nil
	}

	return &id, nil
}

// Set caches the delivery identifier for the tracking number.
func (c *TrackingCache) Set(ctx context.Context, trackingNumber kernel.TrackingNumber, deliveryID kernel.UUID) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	err := c.client.Set(ctx, trackingKeyPrefix+trackingNumber.String(), deliveryID.String(), c.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set tracking entry: %w", err)
	}

	return nil
}

// Ping checks if Redis is reachable. Used by the health endpoint.
func (c *TrackingCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (c *TrackingCache) Close() error {
	return c.client.Close()
}
