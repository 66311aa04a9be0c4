package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"alpsconnect/models"

	"github.com/go-redis/redis/v8"
)

const forecastCachePrefix = "wx:"

// ForecastCache stores forecasts keyed by trip and calendar day. Get returns
// nil on a miss; cached days are never refetched.
type ForecastCache interface {
	Get(ctx context.Context, tripID, date string) (*models.Forecast, error)
	Set(ctx context.Context, tripID, date string, forecast models.Forecast) error
}

type RedisForecastCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisForecastCache(client *redis.Client, ttl time.Duration) *RedisForecastCache {
	return &RedisForecastCache{client: client, ttl: ttl}
}

func cacheKey(tripID, date string) string {
	return fmt.Sprintf("%s%s:%s", forecastCachePrefix, tripID, date)
}

func (c *RedisForecastCache) Get(ctx context.Context, tripID, date string) (*models.Forecast, error) {
	data, err := c.client.Get(ctx, cacheKey(tripID, date)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var forecast models.Forecast
	if err := json.Unmarshal([]byte(data), &forecast); err != nil {
		return nil, err
	}
	return &forecast, nil
}

func (c *RedisForecastCache) Set(ctx context.Context, tripID, date string, forecast models.Forecast) error {
	b, err := json.Marshal(forecast)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(tripID, date), b, c.ttl).Err()
}
