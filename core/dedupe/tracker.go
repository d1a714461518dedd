package dedupe

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Tracker remembers which webhook events have already been processed.
type Tracker interface {
	// Seen reports whether the event completed successfully before.
	Seen(ctx context.Context, eventID string) (bool, error)
	// Mark records the event as completed.
	Mark(ctx context.Context, eventID string) error
}

// Noop is a Tracker that remembers nothing.
type Noop struct{}

func (Noop) Seen(context.Context, string) (bool, error) { return false, nil }
func (Noop) Mark(context.Context, string) error         { return nil }

// RedisTracker stores completed event ids in Redis with a TTL.
type RedisTracker struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisTracker wraps an existing Redis client.
func NewRedisTracker(client *redis.Client, cfg Config) *RedisTracker {
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisTracker{client: client, prefix: cfg.Prefix, ttl: ttl}
}

// Open returns a RedisTracker when an address is configured, Noop otherwise.
func Open(ctx context.Context, cfg Config) (Tracker, error) {
	if cfg.Addr == "" {
		return Noop{}, nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return NewRedisTracker(client, cfg), nil
}

func (t *RedisTracker) Seen(ctx context.Context, eventID string) (bool, error) {
	if eventID == "" {
		return false, nil
	}
	n, err := t.client.Exists(ctx, t.prefix+eventID).Result()
	if err != nil {
		return false, fmt.Errorf("check event %s: %w", eventID, err)
	}
	return n > 0, nil
}

func (t *RedisTracker) Mark(ctx context.Context, eventID string) error {
	if eventID == "" {
		return nil
	}
	if err := t.client.Set(ctx, t.prefix+eventID, time.Now().UTC().Format(time.RFC3339), t.ttl).Err(); err != nil {
		return fmt.Errorf("mark event %s: %w", eventID, err)
	}
	return nil
}

// Close releases the Redis connection.
func (t *RedisTracker) Close() error {
	return t.client.Close()
}
