package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

const searchKeyPrefix = "recipesearch:"

type RedisClient struct {
	client *redis.Client
}

func NewRedisClient() (*RedisClient, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{client: client}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

// StoreSearchResults caches a serialized upstream recipe payload under
// the query key with an expiration.
func (r *RedisClient) StoreSearchResults(ctx context.Context, key string, payload interface{}, duration time.Duration) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err := r.client.Set(ctx, searchKeyPrefix+key, jsonData, duration).Err(); err != nil {
		return fmt.Errorf("failed to store payload in Redis: %w", err)
	}
	return nil
}

// GetSearchResults loads a cached payload into out. The second return is
// false on a cache miss.
func (r *RedisClient) GetSearchResults(ctx context.Context, key string, out interface{}) (bool, error) {
	data, err := r.client.Get(ctx, searchKeyPrefix+key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get payload from Redis: %w", err)
	}

	if err := json.Unmarshal([]byte(data), out); err != nil {
		return false, fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	return true, nil
}

// InvalidateSearchResults drops one cached query.
func (r *RedisClient) InvalidateSearchResults(ctx context.Context, key string) error {
	return r.client.Del(ctx, searchKeyPrefix+key).Err()
}
