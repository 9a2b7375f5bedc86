package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"

	"gitlab.connectwisedev.com/storefront-client/models"
)

// RedisStorage keeps the cart snapshot in Redis, namespaced by session id so
// several storefront sessions can share one Redis instance.
type RedisStorage struct {
	client    *redis.Client
	sessionID string
}

// NewRedisStorage returns a cart storage backed by the given Redis client
func NewRedisStorage(client *redis.Client, sessionID string) *RedisStorage {
	return &RedisStorage{client: client, sessionID: sessionID}
}

func (s *RedisStorage) key() string {
	return fmt.Sprintf("cart:%s", s.sessionID)
}

// Load reads and unmarshals the persisted cart. A missing key or a snapshot
// that no longer parses both yield an empty cart.
func (s *RedisStorage) Load(ctx context.Context) ([]models.CartItem, error) {
	data, err := s.client.Get(ctx, s.key()).Result()
	if err != nil {
		if err == redis.Nil { // No cart persisted yet
			return []models.CartItem{}, nil
		}
		return nil, fmt.Errorf("failed to read cart from Redis: %w", err)
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		log.Printf("Discarding corrupt cart snapshot for key %s: %v", s.key(), err)
		return []models.CartItem{}, nil
	}
	return items, nil
}

// Save overwrites the persisted cart snapshot
func (s *RedisStorage) Save(ctx context.Context, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart items: %w", err)
	}
	if err := s.client.Set(ctx, s.key(), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write cart to Redis: %w", err)
	}
	return nil
}

// Clear removes the persisted cart snapshot
func (s *RedisStorage) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key()).Err(); err != nil {
		return fmt.Errorf("failed to delete cart from Redis: %w", err)
	}
	return nil
}
