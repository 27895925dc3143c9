package main

import (
	"github.com/yonatan-reicher/staymarket-backend/config"
	"github.com/yonatan-reicher/staymarket-backend/internal/app/controller"
	"github.com/yonatan-reicher/staymarket-backend/internal/app/repository"
	"github.com/yonatan-reicher/staymarket-backend/internal/app/service"
	"github.com/yonatan-reicher/staymarket-backend/internal/db"
	"github.com/yonatan-reicher/staymarket-backend/internal/router"
	"github.com/yonatan-reicher/staymarket-backend/internal/scheduler"
	"github.com/yonatan-reicher/staymarket-backend/pkg/logger"
	"github.com/yonatan-reicher/staymarket-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := cfg.Log.Level
	if cfg.Server.Environment == "development" && logLevel == "" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:  logLevel,
		Format: cfg.Log.Format,
	})

	logger.Info("Starting STAYMARKET Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations (tables + aggregate views, idempotent)
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Recommendation cache is optional; without redis every read misses
	var cache *redis.RecommendationCache
	if cfg.Redis.Enabled {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Fatal("Failed to initialize Redis", err)
		}
		defer func() {
			if err := redis.Close(); err != nil {
				logger.Error("Failed to close Redis connection", err)
			}
		}()
		cache = redis.NewRecommendationCache(redis.GetClient())
	}

	// Initialize repositories
	ownerRepo := repository.NewOwnerRepository(db.GetDB())
	customerRepo := repository.NewCustomerRepository(db.GetDB())
	apartmentRepo := repository.NewApartmentRepository(db.GetDB())
	reservationRepo := repository.NewReservationRepository(db.GetDB())
	reviewRepo := repository.NewReviewRepository(db.GetDB())
	analyticsRepo := repository.NewAnalyticsRepository(db.GetDB())

	// Initialize services
	ownerService := service.NewOwnerService(ownerRepo)
	customerService := service.NewCustomerService(customerRepo)
	apartmentService := service.NewApartmentService(apartmentRepo)
	reservationService := service.NewReservationService(reservationRepo)
	reviewService := service.NewReviewService(reviewRepo, cache)
	analyticsService := service.NewAnalyticsService(analyticsRepo, cache)
	reportService := service.NewReportService(analyticsRepo)

	// Initialize controllers
	ownerController := controller.NewOwnerController(ownerService)
	customerController := controller.NewCustomerController(customerService)
	apartmentController := controller.NewApartmentController(apartmentService, ownerService)
	reservationController := controller.NewReservationController(reservationService)
	reviewController := controller.NewReviewController(reviewService)
	analyticsController := controller.NewAnalyticsController(analyticsService, reportService)

	// Start the nightly cache sweep when caching is on
	if cache != nil {
		recommendationScheduler := scheduler.NewRecommendationScheduler(cache)
		if err := recommendationScheduler.Start(); err != nil {
			logger.Fatal("Failed to start recommendation scheduler", err)
		}
		defer recommendationScheduler.Stop()
	}

	// Setup router and serve
	r := router.NewRouter(
		ownerController,
		customerController,
		apartmentController,
		reservationController,
		reviewController,
		analyticsController,
		cfg,
	)
	engine := r.Setup()

	logger.Info("Server listening", map[string]interface{}{
		"port": cfg.Server.Port,
	})
	if err := engine.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Server stopped unexpectedly", err)
	}
}
