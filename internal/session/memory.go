package session

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/chirosmith/portal-api/internal/model"
)

// MemoryStore keeps selections in process memory. Suitable for a single
// instance; selections are lost on restart.
type MemoryStore struct {
	c *cache.Cache
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{c: cache.New(ttl, 2*ttl)}
}

func (s *MemoryStore) Put(_ context.Context, sessionID string, slot model.SelectedSlot) error {
	s.c.Set(sessionID, slot, cache.DefaultExpiration)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (*model.SelectedSlot, error) {
	v, ok := s.c.Get(sessionID)
	if !ok {
		return nil, ErrNoSelection
	}
	slot, ok := v.(model.SelectedSlot)
	if !ok {
		return nil, ErrNoSelection
	}
	return &slot, nil
}
