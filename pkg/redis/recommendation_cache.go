package redis

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/yonatan-reicher/staymarket-backend/internal/app/model"
	"github.com/yonatan-reicher/staymarket-backend/pkg/logger"
)

// recommendationHash is one hash holding every customer's cached
// recommendation list, keyed by customer id. A single hash makes
// invalidation one DEL: any review mutation can shift every pairwise ratio,
// so per-customer eviction would be wrong anyway.
const recommendationHash = "apartment_recommendations"

// RecommendationCache memoizes recommendation query results. A nil cache or
// a cache without a client is valid and behaves as always-miss, so the
// engine runs unchanged without Redis.
type RecommendationCache struct {
	client *redis.Client
}

func NewRecommendationCache(client *redis.Client) *RecommendationCache {
	return &RecommendationCache{client: client}
}

// Get returns the cached recommendations for a customer and whether the
// lookup hit. Cache failures degrade to a miss.
func (c *RecommendationCache) Get(ctx context.Context, customerID int) ([]model.Recommendation, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.HGet(ctx, recommendationHash, strconv.Itoa(customerID)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logger.Warn("Recommendation cache read failed", map[string]interface{}{
			"customer_id": customerID,
			"error":       err.Error(),
		})
		return nil, false
	}

	var recommendations []model.Recommendation
	if err := json.Unmarshal([]byte(raw), &recommendations); err != nil {
		logger.Warn("Recommendation cache entry corrupt, ignoring", map[string]interface{}{
			"customer_id": customerID,
			"error":       err.Error(),
		})
		return nil, false
	}
	return recommendations, true
}

// Set stores a customer's recommendation list.
func (c *RecommendationCache) Set(ctx context.Context, customerID int, recommendations []model.Recommendation) {
	if c == nil || c.client == nil {
		return
	}

	encoded, err := json.Marshal(recommendations)
	if err != nil {
		logger.Warn("Failed to encode recommendations for caching", map[string]interface{}{
			"customer_id": customerID,
			"error":       err.Error(),
		})
		return
	}

	if err := c.client.HSet(ctx, recommendationHash, strconv.Itoa(customerID), encoded).Err(); err != nil {
		logger.Warn("Recommendation cache write failed", map[string]interface{}{
			"customer_id": customerID,
			"error":       err.Error(),
		})
	}
}

// Invalidate drops every cached recommendation list.
func (c *RecommendationCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Del(ctx, recommendationHash).Err(); err != nil {
		logger.Warn("Recommendation cache invalidation failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
