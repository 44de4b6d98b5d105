package profile

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/marquee/internal/platform/constants"
)

// RedisCache keeps one string key per user: profile:name:<userID>.
type RedisCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisCache(client redis.UniversalClient, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func cacheKey(userID string) string {
	return constants.RedisPrefixProfileName + userID
}

func (cache *RedisCache) Get(context context.Context, userIDs []string) (map[string]string, error) {
	keys := make([]string, len(userIDs))
	for i, id := range userIDs {
		keys[i] = cacheKey(id)
	}

	values, err := cache.client.MGet(context, keys...).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	names := make(map[string]string, len(values))
	for i, value := range values {
		if name, ok := value.(string); ok {
			names[userIDs[i]] = name
		}
	}

	return names, nil
}

func (cache *RedisCache) Set(context context.Context, names map[string]string) error {
	_, err := cache.client.Pipelined(context, func(pipe redis.Pipeliner) error {
		for id, name := range names {
			pipe.Set(context, cacheKey(id), name, cache.ttl)
		}
		return nil
	})
	return err
}
