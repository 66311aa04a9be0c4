package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the latest reachability snapshot of the backing stores.
type HealthStatus struct {
	Mongo      bool      `json:"mongo"`
	RedisCache bool      `json:"redisCache"` // forecast cache
	RedisStats bool      `json:"redisStats"` // visit counters
	CheckedAt  time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor pings the mongo client and both redis clients every
// minute and keeps the snapshot served by /health current.
func StartHealthMonitor(cacheClient, statsClient *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			status := HealthStatus{
				Mongo:      mongoClient.Ping(ctx, nil) == nil,
				RedisCache: cacheClient.Ping(ctx).Err() == nil,
				RedisStats: statsClient.Ping(ctx).Err() == nil,
				CheckedAt:  time.Now(),
			}

			healthMu.Lock()
			currentHealth = status
			healthMu.Unlock()
		}
	}()
}
