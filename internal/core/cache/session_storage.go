package cache

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

const sessionStorageTimeout = 2 * time.Second

var _ fiber.Storage = (*SessionStorage)(nil)

// SessionStorage adapts a Cache to fiber.Storage so visitor sessions share the Redis
// connection used for cached queries. Keys are namespaced by prefix.
type SessionStorage struct {
	cache  Cache
	prefix string
}

// NewSessionStorage creates a SessionStorage writing keys as prefix+key.
func NewSessionStorage(c Cache, prefix string) *SessionStorage {
	return &SessionStorage{
		cache:  c,
		prefix: prefix,
	}
}

// Get returns nil, nil for unknown keys as fiber.Storage requires.
func (s *SessionStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), sessionStorageTimeout)
	defer cancel()

	data, err := s.cache.Get(ctx, s.prefix+key)
	if errors.Is(err, ErrCacheMiss) {
		return nil, nil
	}
	return data, err
}

// Set stores val for exp; empty keys and values are ignored.
func (s *SessionStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), sessionStorageTimeout)
	defer cancel()

	return s.cache.Set(ctx, s.prefix+key, val, exp)
}

// Delete removes the session stored under key.
func (s *SessionStorage) Delete(key string) error {
	if key == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), sessionStorageTimeout)
	defer cancel()

	return s.cache.Delete(ctx, s.prefix+key)
}

// Reset is not supported: the underlying cache is shared with other keys.
func (s *SessionStorage) Reset() error {
	return errors.ErrUnsupported
}

// Close is a no-op; the cache connection is owned by the caller.
func (s *SessionStorage) Close() error {
	return nil
}
