package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/yonatan-reicher/staymarket-backend/pkg/logger"
	"github.com/yonatan-reicher/staymarket-backend/pkg/redis"
)

// RecommendationScheduler periodically drops the cached recommendation
// lists. The cache is already invalidated on every review mutation; the
// nightly sweep bounds staleness if an invalidation was lost, for example
// during a redis outage.
type RecommendationScheduler struct {
	cron  *cron.Cron
	cache *redis.RecommendationCache
}

func NewRecommendationScheduler(cache *redis.RecommendationCache) *RecommendationScheduler {
	return &RecommendationScheduler{
		cron:  cron.New(),
		cache: cache,
	}
}

// Start schedules the nightly cache sweep at 04:00.
func (s *RecommendationScheduler) Start() error {
	_, err := s.cron.AddFunc("0 4 * * *", func() {
		logger.Info("Dropping recommendation cache on schedule")
		s.cache.Invalidate(context.Background())
	})
	if err != nil {
		logger.Error("Failed to add cron job for recommendation cache sweep", err)
		return err
	}

	s.cron.Start()
	logger.Info("Recommendation cache scheduler started (daily at 4:00 AM)")
	return nil
}

// Stop stops the scheduler
func (s *RecommendationScheduler) Stop() {
	s.cron.Stop()
	logger.Info("Recommendation cache scheduler stopped")
}
