package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionLocker serializa el recalculo por sesion: dos recalculos
// concurrentes de la misma sesion competirian en el upsert del resultado.
type SessionLocker interface {
	Acquire(ctx context.Context, sessionID string) (bool, error)
	Release(ctx context.Context, sessionID string) error
}

type memorySessionLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewMemorySessionLocker() SessionLocker {
	return &memorySessionLocker{held: make(map[string]struct{})}
}

func (l *memorySessionLocker) Acquire(_ context.Context, sessionID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.held[sessionID]; ok {
		return false, nil
	}
	l.held[sessionID] = struct{}{}
	return true, nil
}

func (l *memorySessionLocker) Release(_ context.Context, sessionID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, sessionID)
	return nil
}

type redisSessionLocker struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

func NewRedisSessionLocker(client *redis.Client, ttl time.Duration) SessionLocker {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &redisSessionLocker{
		client: client,
		ttl:    ttl,
		prefix: "recalc:lock:",
	}
}

func (l *redisSessionLocker) Acquire(ctx context.Context, sessionID string) (bool, error) {
	key := l.prefix + strings.TrimSpace(sessionID)
	return l.client.SetNX(ctx, key, "1", l.ttl).Result()
}

func (l *redisSessionLocker) Release(ctx context.Context, sessionID string) error {
	key := l.prefix + strings.TrimSpace(sessionID)
	return l.client.Del(ctx, key).Err()
}
