package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yonatan-reicher/staymarket-backend/config"
	"github.com/yonatan-reicher/staymarket-backend/internal/app/controller"
	"github.com/yonatan-reicher/staymarket-backend/internal/middleware"
)

type Router struct {
	ownerController       *controller.OwnerController
	customerController    *controller.CustomerController
	apartmentController   *controller.ApartmentController
	reservationController *controller.ReservationController
	reviewController      *controller.ReviewController
	analyticsController   *controller.AnalyticsController
	config                *config.Config
}

func NewRouter(
	ownerController *controller.OwnerController,
	customerController *controller.CustomerController,
	apartmentController *controller.ApartmentController,
	reservationController *controller.ReservationController,
	reviewController *controller.ReviewController,
	analyticsController *controller.AnalyticsController,
	cfg *config.Config,
) *Router {
	return &Router{
		ownerController:       ownerController,
		customerController:    customerController,
		apartmentController:   apartmentController,
		reservationController: reservationController,
		reviewController:      reviewController,
		analyticsController:   analyticsController,
		config:                cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "STAYMARKET API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		owners := v1.Group("/owners")
		{
			owners.POST("", r.ownerController.CreateOwner)
			owners.GET("/:id", r.ownerController.GetOwner)
			owners.DELETE("/:id", r.ownerController.DeleteOwner)
			owners.GET("/:id/rating", r.analyticsController.GetOwnerRating)
			owners.GET("/:id/apartments", r.ownerController.ListOwnerApartments)
			owners.POST("/:id/apartments/:apartment_id", r.ownerController.AssignApartment)
			owners.DELETE("/:id/apartments/:apartment_id", r.ownerController.DropApartment)
		}

		customers := v1.Group("/customers")
		{
			customers.POST("", r.customerController.CreateCustomer)
			customers.GET("/:id", r.customerController.GetCustomer)
			customers.DELETE("/:id", r.customerController.DeleteCustomer)
			customers.GET("/:id/recommendations", r.analyticsController.GetRecommendations)
		}

		apartments := v1.Group("/apartments")
		{
			apartments.POST("", r.apartmentController.CreateApartment)
			apartments.GET("/:id", r.apartmentController.GetApartment)
			apartments.DELETE("/:id", r.apartmentController.DeleteApartment)
			apartments.GET("/:id/owner", r.apartmentController.GetApartmentOwner)
			apartments.GET("/:id/rating", r.analyticsController.GetApartmentRating)
			apartments.GET("/:id/reservations", r.reservationController.ListApartmentReservations)
			apartments.GET("/:id/reviews", r.reviewController.ListApartmentReviews)
		}

		reservations := v1.Group("/reservations")
		{
			reservations.POST("", r.reservationController.CreateReservation)
			reservations.DELETE("", r.reservationController.CancelReservation)
		}

		reviews := v1.Group("/reviews")
		{
			reviews.POST("", r.reviewController.CreateReview)
			reviews.PUT("", r.reviewController.UpdateReview)
			reviews.GET("", r.reviewController.GetReview)
		}

		analytics := v1.Group("/analytics")
		{
			analytics.GET("/top-customer", r.analyticsController.GetTopCustomer)
			analytics.GET("/reservations-per-owner", r.analyticsController.GetReservationsPerOwner)
			analytics.GET("/profit-per-month", r.analyticsController.GetProfitPerMonth)
			analytics.GET("/all-city-owners", r.analyticsController.GetAllCityOwners)
			analytics.GET("/best-value", r.analyticsController.GetBestValueForMoney)
			analytics.GET("/report", r.analyticsController.DownloadYearReport)
		}
	}

	return router
}
