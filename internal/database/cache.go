package database

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// Cache stores finished analyses keyed by a digest of the normalized
// symptom text, so repeated complaints skip the inference call.
type Cache struct {
	client *redis.Client
	logger *logrus.Logger
}

func NewCache(client *redis.Client, logger *logrus.Logger) *Cache {
	return &Cache{
		client: client,
		logger: logger,
	}
}

// Cache key constants
const (
	analysisResultKey = "analysis:result:%s"
)

// CacheAnalysis stores a finished analysis under the symptom digest.
func (c *Cache) CacheAnalysis(ctx context.Context, digest, analysis string, expiration time.Duration) error {
	key := fmt.Sprintf(analysisResultKey, digest)
	return c.client.Set(ctx, key, analysis, expiration).Err()
}

// GetCachedAnalysis returns the cached analysis for a symptom digest.
// A miss surfaces as redis.Nil.
func (c *Cache) GetCachedAnalysis(ctx context.Context, digest string) (string, error) {
	key := fmt.Sprintf(analysisResultKey, digest)
	return c.client.Get(ctx, key).Result()
}
