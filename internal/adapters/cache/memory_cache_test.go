package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/farhan/phish-triage/internal/core"
)

func newTestCache(t *testing.T) *MemoryCache {
	t.Helper()
	c := NewMemoryCache(zap.NewNop(), time.Hour)
	t.Cleanup(c.Stop)
	return c
}

func entry(hash string, ttl time.Duration) *core.CacheEntry {
	now := time.Now()
	return &core.CacheEntry{
		ContentHash:         hash,
		SafeProbability:     0.2,
		PhishingProbability: 0.8,
		LastSeen:            now,
		ExpiresAt:           now.Add(ttl),
	}
}

func TestMemoryCache_SetAndGet(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, entry("abc", time.Hour)))

	got, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", got.ContentHash)
	assert.Equal(t, 0.2, got.SafeProbability)
	assert.Equal(t, 0.8, got.PhishingProbability)
}

func TestMemoryCache_GetMissing(t *testing.T) {
	c := newTestCache(t)

	_, err := c.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCache_GetExpired(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, entry("stale", -time.Minute)))

	_, err := c.Get(ctx, "stale")
	assert.ErrorIs(t, err, ErrExpired)
}

func TestMemoryCache_GetReturnsCopy(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, entry("abc", time.Hour)))

	got, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	got.PhishingProbability = 0.1

	again, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 0.8, again.PhishingProbability)
}

func TestMemoryCache_Delete(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, entry("abc", time.Hour)))
	require.NoError(t, c.Delete(ctx, "abc"))

	_, err := c.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCache_CleanupRemovesExpiredOnly(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, entry("fresh", time.Hour)))
	require.NoError(t, c.Set(ctx, entry("stale", -time.Minute)))

	require.NoError(t, c.Cleanup(ctx))

	_, err := c.Get(ctx, "fresh")
	assert.NoError(t, err)

	_, err = c.Get(ctx, "stale")
	assert.ErrorIs(t, err, ErrNotFound)
}
