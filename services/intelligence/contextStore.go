// File: services/intelligence/contextStore.go
package intelligence

import (
	"context"
	"encoding/json"
	"time"

	"meetplan/models"

	"github.com/go-redis/redis/v8"
)

const plannerContextPrefix = "planner:ctx:"

type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, userID string) (*models.PlannerContext, error) {
	key := plannerContextPrefix + userID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.PlannerContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var pc models.PlannerContext
	if err := json.Unmarshal([]byte(data), &pc); err != nil {
		return nil, err
	}
	return &pc, nil
}

func (s *RedisContextStore) Set(ctx context.Context, userID string, pc *models.PlannerContext) error {
	key := plannerContextPrefix + userID
	b, err := json.Marshal(pc)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, userID string) error {
	key := plannerContextPrefix + userID
	return s.client.Del(ctx, key).Err()
}
