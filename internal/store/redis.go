package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisKV keeps the planner records in Redis. Records are primary storage
// here, not a cache, so nothing expires.
type RedisKV struct {
	client *redis.Client
}

// NewRedisKV connects to Redis and verifies the connection.
func NewRedisKV(redisURL string) (*RedisKV, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisKV{client: client}, nil
}

func (s *RedisKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (s *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

func (s *RedisKV) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

func (s *RedisKV) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisKV) Close() error {
	return s.client.Close()
}
