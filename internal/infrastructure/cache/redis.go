// Package cache provides the best-effort local snapshot store backing
// the reconciler's offline fallback.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/storeadmin/backend/internal/domain/shared"
	"github.com/storeadmin/backend/internal/infrastructure/config"
)

// maxValueSize caps stored payloads. Callers truncate large collections
// before writing; anything still over the cap is refused, not split.
const maxValueSize = 1 << 20 // 1MB

// NewRedisClient opens and pings a redis connection.
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// RedisBackupCache implements the reconciler's BackupCache port.
type RedisBackupCache struct {
	client *redis.Client
	prefix string
}

// NewRedisBackupCache creates a backup cache with the given key prefix.
func NewRedisBackupCache(client *redis.Client, prefix string) *RedisBackupCache {
	return &RedisBackupCache{client: client, prefix: prefix}
}

// Store writes a snapshot. Values never expire; each save overwrites
// the previous snapshot for the same key.
func (c *RedisBackupCache) Store(ctx context.Context, key string, payload []byte) error {
	if len(payload) > maxValueSize {
		return fmt.Errorf("payload of %d bytes exceeds cache value limit", len(payload))
	}
	return c.client.Set(ctx, c.prefix+key, payload, 0).Err()
}

// Load reads a snapshot, returning shared.ErrNotFound on a miss.
func (c *RedisBackupCache) Load(ctx context.Context, key string) ([]byte, error) {
	payload, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return payload, nil
}
