package stats

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// RedisStore backs the visit counters with Redis.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

// Incr relies on redis INCR for atomicity. A key holding a non-numeric
// value is reset so the counter restarts at zero instead of failing.
func (s *RedisStore) Incr(ctx context.Context, key string) (int64, error) {
	val, err := s.client.Incr(ctx, key).Result()
	if err == nil {
		return val, nil
	}
	if setErr := s.client.Set(ctx, key, "1", 0).Err(); setErr != nil {
		return 0, setErr
	}
	return 1, nil
}
