package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/minutemind/minutemind/pkg/config"
)

// RedisLocker implements Locker on top of Redis SET NX
type RedisLocker struct {
	client *redis.Client
}

// NewRedisLocker connects to Redis and returns a distributed locker
func NewRedisLocker(cfg *config.Config) (*RedisLocker, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Println("✅ Redis connected successfully")

	return &RedisLocker{client: client}, nil
}

// Acquire takes the lock if it is free. The TTL bounds how long a crashed
// holder can keep the key.
func (r *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return r.client.SetNX(ctx, key, "1", ttl).Result()
}

// Release frees the lock
func (r *RedisLocker) Release(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// Close closes the underlying Redis connection
func (r *RedisLocker) Close() error {
	return r.client.Close()
}
