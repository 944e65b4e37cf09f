package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/andresuchdata/inventree-web/internal/config"
	"github.com/andresuchdata/inventree-web/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	// ServerStateKey is the session storage key holding the serialized state.
	ServerStateKey = "server-api-state"
	scanBatchSize  = 100
)

// ServerStateCache persists the server API state for one session.
type ServerStateCache interface {
	GetState(ctx context.Context) (*domain.ServerAPIState, bool, error)
	SetState(ctx context.Context, state *domain.ServerAPIState) error
	// Invalidate drops the snapshot of this session only.
	Invalidate(ctx context.Context) error
	// InvalidateSessions drops the snapshot of every session sharing the
	// store and reports how many were removed.
	InvalidateSessions(ctx context.Context) (int64, error)
}

type redisServerStateCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

type noopServerStateCache struct{}

// NewServerStateCache returns a redis backed session store, or a no-op store
// when caching is disabled.
func NewServerStateCache(cfg config.CacheConfig) (ServerStateCache, error) {
	if !cfg.Enabled {
		return &noopServerStateCache{}, nil
	}

	client, err := dialSessionStore(cfg)
	if err != nil {
		return nil, err
	}

	return NewRedisServerStateCache(client, cfg.SessionKeyPrefix, sessionTTL(cfg.SessionTTLSeconds)), nil
}

// NewRedisServerStateCache wraps an existing client. Keys are namespaced
// under prefix so each session keeps its own snapshot.
func NewRedisServerStateCache(client *redis.Client, prefix string, ttl time.Duration) ServerStateCache {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &redisServerStateCache{
		client: client,
		prefix: strings.TrimSuffix(prefix, ":"),
		ttl:    ttl,
	}
}

// NewNoopServerStateCache returns a store that keeps nothing, so every
// process starts without a snapshot.
func NewNoopServerStateCache() ServerStateCache {
	return &noopServerStateCache{}
}

func (c *redisServerStateCache) key() string {
	if c.prefix == "" {
		return ServerStateKey
	}
	return c.prefix + ":" + ServerStateKey
}

func (c *redisServerStateCache) GetState(ctx context.Context) (*domain.ServerAPIState, bool, error) {
	payload, err := c.client.Get(ctx, c.key()).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var state domain.ServerAPIState
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, false, fmt.Errorf("decode server state cache: %w", err)
	}

	return &state, true, nil
}

func (c *redisServerStateCache) SetState(ctx context.Context, state *domain.ServerAPIState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode server state cache: %w", err)
	}

	if err := c.client.Set(ctx, c.key(), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (c *redisServerStateCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key()).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func (c *redisServerStateCache) InvalidateSessions(ctx context.Context) (int64, error) {
	removed, err := deleteKeysMatching(ctx, c.client, "*:"+ServerStateKey, scanBatchSize)
	if err != nil {
		return removed, err
	}

	// Sessions without a prefix store the bare key.
	n, err := c.client.Del(ctx, ServerStateKey).Result()
	if err != nil {
		return removed, fmt.Errorf("redis delete failed: %w", err)
	}
	return removed + n, nil
}

func (n *noopServerStateCache) GetState(ctx context.Context) (*domain.ServerAPIState, bool, error) {
	return nil, false, nil
}

func (n *noopServerStateCache) SetState(ctx context.Context, state *domain.ServerAPIState) error {
	return nil
}

func (n *noopServerStateCache) Invalidate(ctx context.Context) error {
	return nil
}

func (n *noopServerStateCache) InvalidateSessions(ctx context.Context) (int64, error) {
	return 0, nil
}
