// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"roomboard/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SnapshotCacheClient is the Redis client backing the last-known-good
// snapshot cache. Nil when Redis is unreachable; the feed treats the
// cache as optional.
var SnapshotCacheClient *redis.Client

// InitSnapshotCache initializes the Redis snapshot cache client. Unlike the
// upstream feed, Redis is an optimization: failure to connect is logged and
// the service runs without the cache.
func InitSnapshotCache() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		GetLogger().Warn("Redis snapshot cache unavailable, continuing without it", zap.Error(err))
		return
	}
	SnapshotCacheClient = client
}

// GetSnapshotCacheClient returns the snapshot cache client, or nil when
// the cache is disabled.
func GetSnapshotCacheClient() *redis.Client {
	return SnapshotCacheClient
}
