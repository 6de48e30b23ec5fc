package loginattempt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTracker_HitAndCount(t *testing.T) {
	tracker := NewMemoryTracker(time.Minute, 100)
	ctx := context.Background()

	count, err := tracker.Hit(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = tracker.Hit(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = tracker.Count(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = tracker.Count(ctx, "b@example.com")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMemoryTracker_Reset(t *testing.T) {
	tracker := NewMemoryTracker(time.Minute, 100)
	ctx := context.Background()

	_, err := tracker.Hit(ctx, "a@example.com")
	require.NoError(t, err)

	require.NoError(t, tracker.Reset(ctx, "a@example.com"))

	count, err := tracker.Count(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMemoryTracker_WindowExpiry(t *testing.T) {
	tracker := NewMemoryTracker(10*time.Millisecond, 100)
	ctx := context.Background()

	_, err := tracker.Hit(ctx, "a@example.com")
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	count, err := tracker.Count(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// A hit after expiry starts a fresh window at 1.
	count, err = tracker.Hit(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMemoryTracker_CapacityBound(t *testing.T) {
	tracker := NewMemoryTracker(time.Minute, 2)
	ctx := context.Background()

	_, err := tracker.Hit(ctx, "a@example.com")
	require.NoError(t, err)
	_, err = tracker.Hit(ctx, "b@example.com")
	require.NoError(t, err)

	// Third distinct email evicts the stalest entry instead of growing.
	_, err = tracker.Hit(ctx, "c@example.com")
	require.NoError(t, err)

	assert.LessOrEqual(t, len(tracker.entries), 2)

	count, err := tracker.Count(ctx, "c@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
