package redis

import (
	"context"
	"testing"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*TrackingCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	cache, err := NewTrackingCache("redis://"+mr.Addr(), ttl)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	return cache, mr
}

func TestTrackingCache_SetAndGet(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	trackingNumber := kernel.NewTrackingNumber()
	deliveryID := kernel.NewUUID()

	require.NoError(t, cache.Set(ctx, trackingNumber, deliveryID))

	cached, err := cache.Get(ctx, trackingNumber)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.True(t, deliveryID.IsEqual(*cached))
}

func TestTrackingCache_Get_MissReturnsNil(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)

	cached, err := cache.Get(context.Background(), kernel.NewTrackingNumber())
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestTrackingCache_Get_CorruptEntryBehavesLikeMiss(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)

	trackingNumber := kernel.NewTrackingNumber()
	require.NoError(t, mr.Set(trackingKeyPrefix+trackingNumber.String(), "not-a-uuid"))

	cached, err := cache.Get(context.Background(), trackingNumber)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestTrackingCache_EntriesExpire(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	trackingNumber := kernel.NewTrackingNumber()
	require.NoError(t, cache.Set(ctx, trackingNumber, kernel.NewUUID()))

	mr.FastForward(2 * time.Minute)

	cached, err := cache.Get(ctx, trackingNumber)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestTrackingCache_Set_RejectsInvalidValues(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	err := cache.Set(ctx, kernel.TrackingNumber{}, kernel.NewUUID())
	require.Error(t, err)

	err = cache.Set(ctx, kernel.NewTrackingNumber(), kernel.UUID{})
	require.Error(t, err)
}

func TestTrackingCache_Ping(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	require.NoError(t, cache.Ping(context.Background()))

	mr.Close()
	require.Error(t, cache.Ping(context.Background()))
}
