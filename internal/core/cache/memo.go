package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"site-announcements/internal/core/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// minExpiry replaces non-positive TTLs: a zero TTL would mean "never expire" to the cache.
const minExpiry = time.Millisecond

// Query describes a single cached result together with the writes that make it stale.
// T is the cached result, R the record type whose saves and deletes are observed.
type Query[T any, R any] interface {
	// Key is the cache key the result lives under.
	Key() string
	// Compute builds a fresh result from the source of truth.
	Compute(ctx context.Context) (T, error)
	// Expiry is the TTL to store a freshly computed result with.
	Expiry(result T) time.Duration
	// StaleOnSave reports whether saving record invalidates the cached result.
	// found is false when nothing was cached.
	StaleOnSave(cached T, found bool, record R) bool
	// StaleOnDelete reports whether deleting record invalidates the cached result.
	StaleOnDelete(cached T, found bool, record R) bool
}

// Memo is a single-entry memoization cell for a Query, stored JSON encoded in a Cache.
type Memo[T any, R any] struct {
	cache Cache
	query Query[T, R]
	group singleflight.Group
}

// NewMemo creates a Memo for query backed by c.
func NewMemo[T any, R any](c Cache, query Query[T, R]) *Memo[T, R] {
	return &Memo[T, R]{
		cache: c,
		query: query,
	}
}

// Get returns the cached result, or found=false when nothing is cached.
func (m *Memo[T, R]) Get(ctx context.Context) (result T, found bool, err error) {
	data, err := m.cache.Get(ctx, m.query.Key())
	if errors.Is(err, ErrCacheMiss) {
		return result, false, nil
	}
	if err != nil {
		return result, false, err
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return result, false, fmt.Errorf("failed to decode cached %s: %w", m.query.Key(), err)
	}
	return result, true, nil
}

// Set stores result with the TTL the query computes for it.
func (m *Memo[T, R]) Set(ctx context.Context, result T) error {
	data, ttl, err := m.encode(result)
	if err != nil {
		return err
	}
	if err := m.cache.Set(ctx, m.query.Key(), data, ttl); err != nil {
		return err
	}

	logger.Get().Debug("Cached query stored",
		zap.String("key", m.query.Key()),
		zap.Duration("ttl", ttl),
	)
	return nil
}

// setIfAbsent stores result unless another writer stored the key first.
func (m *Memo[T, R]) setIfAbsent(ctx context.Context, result T) (bool, error) {
	data, ttl, err := m.encode(result)
	if err != nil {
		return false, err
	}
	return m.cache.SetNX(ctx, m.query.Key(), data, ttl)
}

func (m *Memo[T, R]) encode(result T) ([]byte, time.Duration, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to encode %s: %w", m.query.Key(), err)
	}

	ttl := m.query.Expiry(result)
	if ttl <= 0 {
		ttl = minExpiry
	}
	return data, ttl, nil
}

// Load returns the cached result, computing and storing it on a miss.
// Concurrent misses in this process share one computation, detached from the
// caller's cancellation. A miss is filled only if no write hook stored the key
// meanwhile; an unreadable entry is overwritten. A failing cache degrades to
// computing on every call.
func (m *Memo[T, R]) Load(ctx context.Context) (T, error) {
	cached, found, err := m.Get(ctx)
	unreadable := err != nil
	if unreadable {
		logger.Get().Warn("Cached query unreadable, recomputing",
			zap.String("key", m.query.Key()),
			zap.Error(err),
		)
	} else if found {
		return cached, nil
	}

	v, err, _ := m.group.Do(m.query.Key(), func() (interface{}, error) {
		ctx := context.WithoutCancel(ctx)

		result, err := m.query.Compute(ctx)
		if err != nil {
			return nil, err
		}
		if unreadable {
			if err := m.Set(ctx, result); err != nil {
				m.warnStore(err)
			}
			return result, nil
		}

		stored, err := m.setIfAbsent(ctx, result)
		if err != nil {
			m.warnStore(err)
			return result, nil
		}
		if stored {
			return result, nil
		}
		// A hook refreshed the key while this result was computed.
		if newer, found, err := m.Get(ctx); err == nil && found {
			return newer, nil
		}
		return result, nil
	})
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to compute %s: %w", m.query.Key(), err)
	}
	return v.(T), nil
}

func (m *Memo[T, R]) warnStore(err error) {
	logger.Get().Warn("Failed to store cached query",
		zap.String("key", m.query.Key()),
		zap.Error(err),
	)
}

// Refresh recomputes the result and stores it.
func (m *Memo[T, R]) Refresh(ctx context.Context) (T, error) {
	result, err := m.query.Compute(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to compute %s: %w", m.query.Key(), err)
	}
	if err := m.Set(ctx, result); err != nil {
		return result, err
	}
	return result, nil
}

// OnSave is the write hook for saves of record.
func (m *Memo[T, R]) OnSave(ctx context.Context, record R) error {
	cached, found, err := m.Get(ctx)
	if err != nil {
		return m.invalidate(ctx, err)
	}
	if !m.query.StaleOnSave(cached, found, record) {
		return nil
	}
	if _, err := m.Refresh(ctx); err != nil {
		return m.invalidate(ctx, err)
	}
	return nil
}

// OnDelete is the write hook for deletes of record.
func (m *Memo[T, R]) OnDelete(ctx context.Context, record R) error {
	cached, found, err := m.Get(ctx)
	if err != nil {
		return m.invalidate(ctx, err)
	}
	if !m.query.StaleOnDelete(cached, found, record) {
		return nil
	}
	if _, err := m.Refresh(ctx); err != nil {
		return m.invalidate(ctx, err)
	}
	return nil
}

// invalidate drops the key after a failed refresh so the next Load recomputes.
func (m *Memo[T, R]) invalidate(ctx context.Context, cause error) error {
	if err := m.cache.Delete(ctx, m.query.Key()); err != nil {
		return fmt.Errorf("refresh of %s failed: %w", m.query.Key(), errors.Join(cause, err))
	}
	return fmt.Errorf("refresh of %s failed, key dropped: %w", m.query.Key(), cause)
}
