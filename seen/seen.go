// Package seen tracks recently-served article IDs so the RSS provider does
// not hand the user the same article twice in a row.
package seen

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store records served article IDs with an expiry
type Store interface {
	Seen(ctx context.Context, id string) (bool, error)
	MarkSeen(ctx context.Context, id string) error
}

// RedisStore keeps served IDs in Redis so they survive restarts
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to Redis and verifies connectivity
func NewRedisStore(addr, password string, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

func (s *RedisStore) key(id string) string {
	return "seen:article:" + id
}

func (s *RedisStore) Seen(ctx context.Context, id string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(id)).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists: %w", err)
	}
	return n > 0, nil
}

func (s *RedisStore) MarkSeen(ctx context.Context, id string) error {
	if err := s.client.Set(ctx, s.key(id), 1, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close releases the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// MemoryStore is the in-process fallback when Redis is not configured
type MemoryStore struct {
	mu  sync.Mutex
	ids map[string]time.Time
	ttl time.Duration
}

// NewMemoryStore creates an in-memory store with the given entry TTL
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ids: make(map[string]time.Time),
		ttl: ttl,
	}
}

func (s *MemoryStore) Seen(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.ids[id]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(s.ids, id)
		return false, nil
	}
	return true, nil
}

func (s *MemoryStore) MarkSeen(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[id] = time.Now().Add(s.ttl)
	return nil
}
