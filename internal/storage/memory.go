package storage

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// MemoryStore is an ephemeral backend for tests and throwaway sessions.
type MemoryStore struct {
	c *cache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{c: cache.New(cache.NoExpiration, 0)}
}

func (s *MemoryStore) Load(_ context.Context, key string) (string, bool, error) {
	v, ok := s.c.Get(key)
	if !ok {
		return "", false, nil
	}
	return v.(string), true, nil
}

func (s *MemoryStore) Save(_ context.Context, key, value string) error {
	s.c.Set(key, value, cache.NoExpiration)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.c.Delete(key)
	return nil
}

func (s *MemoryStore) Ping(_ context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }
