package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chirosmith/portal-api/internal/model"
)

// RedisStore keeps selections in Redis so multiple instances share them.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(url string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

func selectionKey(sessionID string) string {
	return "selection:" + sessionID
}

func (s *RedisStore) Put(ctx context.Context, sessionID string, slot model.SelectedSlot) error {
	payload, err := json.Marshal(slot)
	if err != nil {
		return fmt.Errorf("failed to encode selection: %w", err)
	}

	if err := s.client.Set(ctx, selectionKey(sessionID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store selection: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*model.SelectedSlot, error) {
	payload, err := s.client.Get(ctx, selectionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSelection
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read selection: %w", err)
	}

	var slot model.SelectedSlot
	if err := json.Unmarshal(payload, &slot); err != nil {
		return nil, fmt.Errorf("failed to decode selection: %w", err)
	}
	return &slot, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
