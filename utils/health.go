package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
// A nil redis client marks the cache as down permanently.
func StartHealthMonitor(redisClient *redis.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			redisHealthy := false
			if redisClient != nil {
				redisHealthy = redisClient.Ping(ctx).Err() == nil
			}

			mu.Lock()
			currentHealth = HealthStatus{
				Redis:     redisHealthy,
				CheckedAt: time.Now(),
			}
			mu.Unlock()
		}
	}()
}
