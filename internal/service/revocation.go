package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/cache"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/worker"

	"github.com/redis/go-redis/v9"
)

// RevocationStore records logged-out tokens until they would have expired
// anyway. Revoke is idempotent.
type RevocationStore interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

const revocationKeyPrefix = "blacklist:"

// minRevocationTTL keeps a just-expired token on the list briefly instead
// of storing it forever or not at all.
const minRevocationTTL = time.Minute

type redisRevocationStore struct {
	cache cache.Cache
}

// NewRedisRevocationStore stores revoked tokens in Redis with a TTL equal
// to the token's remaining life, so entries evict themselves.
func NewRedisRevocationStore(c cache.Cache) RevocationStore {
	return &redisRevocationStore{cache: c}
}

func (s *redisRevocationStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = minRevocationTTL
	}
	return s.cache.Set(ctx, revocationKeyPrefix+token, "1", ttl).Err()
}

func (s *redisRevocationStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	if err := s.cache.Get(ctx, revocationKeyPrefix+token).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// MemoryRevocationStore keeps revoked tokens in-process. A janitor ticker
// submits sweeps to the worker pool so stale entries are evicted instead
// of accumulating until restart. Not shared across processes.
type MemoryRevocationStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	stop   chan struct{}
}

func NewMemoryRevocationStore(pool *worker.Pool, sweepEvery time.Duration) *MemoryRevocationStore {
	s := &MemoryRevocationStore{
		tokens: make(map[string]time.Time),
		stop:   make(chan struct{}),
	}
	go func() {
		ticker := time.NewTicker(sweepEvery)
		defer ticker.Stop()
		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				pool.Submit(s.sweep)
			}
		}
	}()
	return s
}

func (s *MemoryRevocationStore) Revoke(_ context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = minRevocationTTL
	}
	s.mu.Lock()
	s.tokens[token] = time.Now().Add(ttl)
	s.mu.Unlock()
	return nil
}

func (s *MemoryRevocationStore) IsRevoked(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.tokens[token]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(s.tokens, token)
		return false, nil
	}
	return true, nil
}

func (s *MemoryRevocationStore) sweep() {
	now := time.Now()
	s.mu.Lock()
	for token, expiry := range s.tokens {
		if now.After(expiry) {
			delete(s.tokens, token)
		}
	}
	s.mu.Unlock()
}

// StopJanitor ends the sweep ticker. Pending sweeps already submitted to
// the pool still run.
func (s *MemoryRevocationStore) StopJanitor() {
	close(s.stop)
}
