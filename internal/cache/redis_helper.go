package cache

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/andresuchdata/inventree-web/internal/config"
	"github.com/redis/go-redis/v9"
)

const (
	defaultSessionTTL = time.Hour
	pingTimeout       = 5 * time.Second
)

// dialSessionStore opens the redis connection backing session snapshots and
// verifies it answers before handing it out.
func dialSessionStore(cfg config.CacheConfig) (*redis.Client, error) {
	opts, err := buildRedisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}

func sessionTTL(seconds int) time.Duration {
	if seconds <= 0 {
		return defaultSessionTTL
	}
	return time.Duration(seconds) * time.Second
}

func buildRedisOptions(cfg config.CacheConfig) (*redis.Options, error) {
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		return opt, nil
	}

	host := cfg.RedisHost
	if host == "" {
		host = "127.0.0.1"
	}

	port := cfg.RedisPort
	if port == "" {
		port = "6379"
	}

	return &redis.Options{
		Addr:     net.JoinHostPort(host, port),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, nil
}

// deleteKeysMatching removes every key matching the glob pattern, walking
// the keyspace with SCAN so large stores are not blocked. It returns the
// number of keys removed.
func deleteKeysMatching(ctx context.Context, client *redis.Client, pattern string, batchSize int64) (int64, error) {
	var (
		cursor  uint64
		removed int64
	)
	for {
		keys, next, err := client.Scan(ctx, cursor, pattern, batchSize).Result()
		if err != nil {
			return removed, fmt.Errorf("redis scan failed: %w", err)
		}

		if len(keys) > 0 {
			n, err := client.Del(ctx, keys...).Result()
			if err != nil {
				return removed, fmt.Errorf("redis delete failed: %w", err)
			}
			removed += n
		}

		cursor = next
		if cursor == 0 {
			return removed, nil
		}
	}
}
