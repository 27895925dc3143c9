package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yonatan-reicher/staymarket-backend/internal/app/service"
	"github.com/yonatan-reicher/staymarket-backend/internal/outcome"
	"github.com/yonatan-reicher/staymarket-backend/pkg/logger"
)

type AnalyticsController struct {
	analyticsService *service.AnalyticsService
	reportService    *service.ReportService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService, reportService *service.ReportService) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
		reportService:    reportService,
	}
}

// GetApartmentRating handles GET /apartments/:id/rating
func (ctrl *AnalyticsController) GetApartmentRating(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"rating": ctrl.analyticsService.ApartmentRating(id)})
}

// GetOwnerRating handles GET /owners/:id/rating
func (ctrl *AnalyticsController) GetOwnerRating(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"rating": ctrl.analyticsService.OwnerRating(id)})
}

// GetTopCustomer handles GET /analytics/top-customer
func (ctrl *AnalyticsController) GetTopCustomer(c *gin.Context) {
	customer := ctrl.analyticsService.TopCustomer()
	if customer.IsZero() {
		respondOutcome(c, outcome.NotExists)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// GetReservationsPerOwner handles GET /analytics/reservations-per-owner
func (ctrl *AnalyticsController) GetReservationsPerOwner(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"owners": ctrl.analyticsService.ReservationsPerOwner(),
	})
}

// GetProfitPerMonth handles GET /analytics/profit-per-month?year=YYYY
func (ctrl *AnalyticsController) GetProfitPerMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		respondOutcome(c, outcome.BadParams)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":   year,
		"months": ctrl.analyticsService.ProfitPerMonth(year),
	})
}

// GetAllCityOwners handles GET /analytics/all-city-owners
func (ctrl *AnalyticsController) GetAllCityOwners(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"owners": ctrl.analyticsService.AllCityOwners(),
	})
}

// GetBestValueForMoney handles GET /analytics/best-value
func (ctrl *AnalyticsController) GetBestValueForMoney(c *gin.Context) {
	apartment := ctrl.analyticsService.BestValueForMoney()
	if apartment.IsZero() {
		respondOutcome(c, outcome.NotExists)
		return
	}
	c.JSON(http.StatusOK, apartment)
}

// GetRecommendations handles GET /customers/:id/recommendations
func (ctrl *AnalyticsController) GetRecommendations(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommendations": ctrl.analyticsService.RecommendationsFor(id),
	})
}

// DownloadYearReport handles GET /analytics/report?year=YYYY, streaming the
// xlsx workbook.
func (ctrl *AnalyticsController) DownloadYearReport(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		respondOutcome(c, outcome.BadParams)
		return
	}

	report, err := ctrl.reportService.BuildYearReport(year)
	if err != nil {
		logger.Error("Failed to build year report", err, map[string]interface{}{
			"year": year,
		})
		respondOutcome(c, outcome.Error)
		return
	}
	defer report.Close()

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="report-%d.xlsx"`, year))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := report.Write(c.Writer); err != nil {
		logger.Error("Failed to stream year report", err, map[string]interface{}{
			"year": year,
		})
	}
}
