package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"
)

// RedisLimiter shares fixed-window counters between API instances.
type RedisLimiter struct {
	client rueidis.Client
	prefix string
	window Window
	now    func() time.Time
}

func NewRedisLimiter(client rueidis.Client, prefix string, window Window) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		window: window,
		now:    time.Now,
	}
}

func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := r.windowKey(key)

	count, err := r.client.Do(ctx, r.client.B().Incr().Key(redisKey).Build()).AsInt64()
	if err != nil {
		return false, err
	}

	if count == 1 {
		expire := r.client.B().Expire().Key(redisKey).Seconds(int64(r.window.Duration / time.Second)).Build()
		if err := r.client.Do(ctx, expire).Error(); err != nil {
			return false, err
		}
	}

	return count <= int64(r.window.Limit), nil
}

// windowKey buckets hits by window index so a lost EXPIRE cannot pin a key forever.
func (r *RedisLimiter) windowKey(key string) string {
	slot := r.now().UnixNano() / int64(r.window.Duration)
	return fmt.Sprintf("%s:%s:%d", r.prefix, key, slot)
}
