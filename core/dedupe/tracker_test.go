package dedupe

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTracker(t *testing.T) (*RedisTracker, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	tracker := NewRedisTracker(client, Config{Prefix: "test:", TTLSeconds: 60})
	t.Cleanup(func() { _ = tracker.Close() })
	return tracker, mr
}

func TestRedisTracker_MarkAndSeen(t *testing.T) {
	tracker, mr := setupTracker(t)
	ctx := context.Background()

	seen, err := tracker.Seen(ctx, "evt-1")
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, tracker.Mark(ctx, "evt-1"))

	seen, err = tracker.Seen(ctx, "evt-1")
	require.NoError(t, err)
	assert.True(t, seen)
	assert.True(t, mr.Exists("test:evt-1"))
	assert.Equal(t, 60*time.Second, mr.TTL("test:evt-1"))
}

func TestRedisTracker_Expires(t *testing.T) {
	tracker, mr := setupTracker(t)
	ctx := context.Background()

	require.NoError(t, tracker.Mark(ctx, "evt-2"))
	mr.FastForward(61 * time.Second)

	seen, err := tracker.Seen(ctx, "evt-2")
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestRedisTracker_EmptyID(t *testing.T) {
	tracker, mr := setupTracker(t)
	ctx := context.Background()

	require.NoError(t, tracker.Mark(ctx, ""))
	seen, err := tracker.Seen(ctx, "")
	require.NoError(t, err)
	assert.False(t, seen)
	assert.Empty(t, mr.Keys())
}

func TestRedisTracker_ServerDown(t *testing.T) {
	tracker, mr := setupTracker(t)
	mr.Close()

	_, err := tracker.Seen(context.Background(), "evt-3")
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		tracker, err := Open(context.Background(), Config{})
		require.NoError(t, err)
		assert.IsType(t, Noop{}, tracker)
	})

	t.Run("Redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		tracker, err := Open(context.Background(), Config{Addr: mr.Addr(), Prefix: "p:"})
		require.NoError(t, err)
		assert.IsType(t, &RedisTracker{}, tracker)
		_ = tracker.(*RedisTracker).Close()
	})

	t.Run("Unreachable", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_, err := Open(ctx, Config{Addr: "127.0.0.1:1"})
		assert.Error(t, err)
	})
}
