package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "collections:"

// RedisStore persists each collection document under a prefixed key.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps a connected Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get loads a collection document, nil when the key is absent.
func (s *RedisStore) Get(ctx context.Context, collection string) ([]byte, error) {
	doc, err := s.client.Get(ctx, redisKeyPrefix+collection).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get collection %s: %w", collection, err)
	}
	return doc, nil
}

// Put replaces a collection document. Documents never expire.
func (s *RedisStore) Put(ctx context.Context, collection string, doc []byte) error {
	if err := s.client.Set(ctx, redisKeyPrefix+collection, doc, 0).Err(); err != nil {
		return fmt.Errorf("put collection %s: %w", collection, err)
	}
	return nil
}
