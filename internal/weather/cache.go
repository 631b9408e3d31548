package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vam-insurance/insurance-api/internal/logging"
	"github.com/vam-insurance/insurance-api/internal/observability"
)

// CachedFetcher wraps a Fetcher with a Redis snapshot cache. Cache failures
// never fail the request; they degrade to a direct upstream fetch.
type CachedFetcher struct {
	inner   Fetcher
	client  *redis.Client
	ttl     time.Duration
	logger  *logging.Logger
	metrics *observability.Metrics
}

func NewCachedFetcher(inner Fetcher, client *redis.Client, ttl time.Duration, logger *logging.Logger, metrics *observability.Metrics) *CachedFetcher {
	return &CachedFetcher{
		inner:   inner,
		client:  client,
		ttl:     ttl,
		logger:  logger,
		metrics: metrics,
	}
}

func cacheKey(lat, lon float64) string {
	return fmt.Sprintf("weather:%.4f:%.4f", lat, lon)
}

func (c *CachedFetcher) Fetch(ctx context.Context, lat, lon float64) (Snapshot, error) {
	key := cacheKey(lat, lon)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var snapshot Snapshot
		if err := json.Unmarshal(data, &snapshot); err == nil {
			c.countCache("hit")
			return snapshot, nil
		}
		// Corrupt entry: fall through and refetch.
		c.logger.Warn("discarding unreadable weather cache entry", "key", key)
	} else if err != redis.Nil {
		c.logger.Warn("weather cache read failed", "key", key, "error", err.Error())
		c.countCache("bypass")
		return c.inner.Fetch(ctx, lat, lon)
	}

	c.countCache("miss")

	snapshot, err := c.inner.Fetch(ctx, lat, lon)
	if err != nil {
		return Snapshot{}, err
	}

	if data, err := json.Marshal(snapshot); err == nil {
		if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.logger.Warn("weather cache write failed", "key", key, "error", err.Error())
		}
	}

	return snapshot, nil
}

func (c *CachedFetcher) countCache(result string) {
	if c.metrics != nil {
		c.metrics.WeatherCache.WithLabelValues(result).Inc()
	}
}
