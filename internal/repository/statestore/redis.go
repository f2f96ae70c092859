package statestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"linkgen-gcc-backend/internal/domain"
	"linkgen-gcc-backend/pkg/logger"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
}

// NewRedisStore keeps the snapshot under a single Redis key, the closest
// server-side analogue of the original single-key local storage blob.
func NewRedisStore(client *redis.Client) domain.StateStore {
	return &redisStore{client: client}
}

func (s *redisStore) Load(ctx context.Context) (*domain.AppSnapshot, error) {
	data, err := s.client.Get(ctx, domain.StateKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("statestore: redis get: %w", err)
	}

	var snap domain.AppSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logger.Log.Warn("Discarding malformed state blob in redis", "key", domain.StateKey, "error", err)
		return nil, nil
	}
	return &snap, nil
}

func (s *redisStore) Save(ctx context.Context, snap *domain.AppSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("statestore: marshal snapshot: %w", err)
	}
	if err := s.client.Set(ctx, domain.StateKey, data, 0).Err(); err != nil {
		return fmt.Errorf("statestore: redis set: %w", err)
	}
	return nil
}
