package common

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"airline-ops/seatcrew/internal/logging"
)

const redisOpTimeout = 2 * time.Second

// RedisCacheService implements CacheInterface using Redis.
// Values are stored as JSON and come back as generic JSON types; use DecodeCached to type them.
type RedisCacheService struct {
	client *redis.Client
	prefix string
}

// Ensure RedisCacheService implements CacheInterface
var _ CacheInterface = (*RedisCacheService)(nil)

func NewRedisCacheService(client *redis.Client, prefix string) *RedisCacheService {
	return &RedisCacheService{client: client, prefix: prefix}
}

func (r *RedisCacheService) key(k string) string {
	return r.prefix + k
}

func (r *RedisCacheService) Set(key string, value interface{}, duration time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		logging.Warn("Redis cache: failed to marshal value", "key", key, "error", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	if err := r.client.Set(ctx, r.key(key), data, duration).Err(); err != nil {
		logging.Warn("Redis cache: failed to set key", "key", key, "error", err.Error())
	}
}

func (r *RedisCacheService) Get(key string) (interface{}, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		logging.Warn("Redis cache: failed to get key", "key", key, "error", err.Error())
		return nil, false
	}

	var result interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		logging.Warn("Redis cache: failed to unmarshal value", "key", key, "error", err.Error())
		return nil, false
	}

	return result, true
}

func (r *RedisCacheService) Delete(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		logging.Warn("Redis cache: failed to delete key", "key", key, "error", err.Error())
	}
}

// GetOrSet retrieves a value from cache, or loads it using the loader function if not found
func (r *RedisCacheService) GetOrSet(
	key string,
	duration time.Duration,
	loader func() (any, error),
) (interface{}, error) {
	if val, found := r.Get(key); found {
		return val, nil
	}

	val, err := loader()
	if err != nil {
		return nil, err
	}

	r.Set(key, val, duration)
	return val, nil
}

func (r *RedisCacheService) Close() error {
	return r.client.Close()
}

// DecodeCached converts a cached value into out. In-memory caches hand back the
// original value; Redis hands back decoded JSON, so both are funnelled through JSON.
func DecodeCached(val interface{}, out interface{}) error {
	data, err := json.Marshal(val)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
