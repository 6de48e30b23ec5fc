package loginattempt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisTracker struct {
	client *redis.Client
	window time.Duration
}

func NewRedisTracker(client *redis.Client, window time.Duration) *RedisTracker {
	return &RedisTracker{
		client: client,
		window: window,
	}
}

func (t *RedisTracker) Hit(ctx context.Context, email string) (int, error) {
	key := t.key(email)

	pipe := t.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, t.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("pipe.Exec -> %w", err)
	}

	return int(incr.Val()), nil
}

func (t *RedisTracker) Count(ctx context.Context, email string) (int, error) {
	count, err := t.client.Get(ctx, t.key(email)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}

		return 0, fmt.Errorf("t.client.Get -> %w", err)
	}

	return count, nil
}

func (t *RedisTracker) Reset(ctx context.Context, email string) error {
	if err := t.client.Del(ctx, t.key(email)).Err(); err != nil {
		return fmt.Errorf("t.client.Del -> %w", err)
	}

	return nil
}

func (t *RedisTracker) key(email string) string {
	return "login_attempts:" + email
}
