package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSQLiteTestCache(t *testing.T) *SQLiteCache {
	t.Helper()
	c, err := NewSQLiteCache(":memory:", zap.NewNop(), time.Hour)
	require.NoError(t, err)
	t.Cleanup(c.Stop)
	return c
}

func TestSQLiteCache_SetAndGet(t *testing.T) {
	c := newSQLiteTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, entry("abc", time.Hour)))

	got, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", got.ContentHash)
	assert.Equal(t, 0.2, got.SafeProbability)
	assert.Equal(t, 0.8, got.PhishingProbability)
}

func TestSQLiteCache_ExpiredEntryNotServed(t *testing.T) {
	c := newSQLiteTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, entry("stale", -time.Minute)))

	_, err := c.Get(ctx, "stale")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteCache_TimestampsRoundTripAsUTC(t *testing.T) {
	c := newSQLiteTestCache(t)
	ctx := context.Background()

	in := entry("abc", time.Hour)
	require.NoError(t, c.Set(ctx, in))

	got, err := c.Get(ctx, "abc")
	require.NoError(t, err)

	// The layout drops sub-second precision; the instant must survive.
	assert.WithinDuration(t, in.ExpiresAt.UTC(), got.ExpiresAt, time.Second)
	assert.Equal(t, time.UTC, got.ExpiresAt.Location())
}

func TestSQLiteCache_CleanupRemovesExpiredOnly(t *testing.T) {
	c := newSQLiteTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, entry("fresh", time.Hour)))
	require.NoError(t, c.Set(ctx, entry("stale", -time.Minute)))

	require.NoError(t, c.Cleanup(ctx))

	_, err := c.Get(ctx, "fresh")
	assert.NoError(t, err)

	_, err = c.Get(ctx, "stale")
	assert.ErrorIs(t, err, ErrNotFound)
}
