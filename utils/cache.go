package utils

import (
	"context"
	"log"
	"time"

	"alpsconnect/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (forecast annotations live here).
	CacheClient *redis.Client
	// StatsCacheClient is the dedicated client for visit counters and session stats.
	StatsCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client (using DB from AppConfig for general caching).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitStatsCache initializes the Redis client for visit/session stats.
func InitStatsCache() {
	StatsCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisStatsDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := StatsCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Stats Cache): %v", err)
	}
}

// GetStatsCacheClient returns the Redis client for visit/session stats.
func GetStatsCacheClient() *redis.Client {
	if StatsCacheClient == nil {
		InitStatsCache()
	}
	return StatsCacheClient
}
