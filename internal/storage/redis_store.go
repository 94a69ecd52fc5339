package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client    *redis.Client
	namespace string
}

func NewRedisStore(client *redis.Client, namespace string) Store {
	if namespace == "" {
		namespace = Namespace
	}

	return &redisStore{
		client:    client,
		namespace: namespace,
	}
}

func (r *redisStore) GetItem(ctx context.Context, key string, value any) (bool, error) {

	fullKey := Key(r.namespace, key)

	data, err := r.client.Get(ctx, fullKey).Bytes()
	if err != nil {

		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, fmt.Errorf("failed to get key %s from redis: %w", fullKey, err)

	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal stored data for key %s: %w", fullKey, err)
	}

	return true, nil
}

// SetItem stores without expiry; local storage outlives sessions.
func (r *redisStore) SetItem(ctx context.Context, key string, value any) error {

	fullKey := Key(r.namespace, key)

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", fullKey, err)
	}

	if err := r.client.Set(ctx, fullKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %s in redis: %w", fullKey, err)
	}

	return nil

}

func (r *redisStore) RemoveItem(ctx context.Context, key string) error {

	fullKey := Key(r.namespace, key)

	if err := r.client.Del(ctx, fullKey).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s from redis: %w", fullKey, err)
	}

	return nil

}

func (r *redisStore) Close() error {
	return r.client.Close()
}
