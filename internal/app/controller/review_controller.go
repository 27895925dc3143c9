package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yonatan-reicher/staymarket-backend/internal/app/service"
	"github.com/yonatan-reicher/staymarket-backend/internal/outcome"
)

type ReviewController struct {
	reviewService *service.ReviewService
}

func NewReviewController(reviewService *service.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

type reviewInput struct {
	CustomerID  int    `json:"customer_id"`
	ApartmentID int    `json:"apartment_id"`
	Date        string `json:"date"`
	Rating      int    `json:"rating"`
	Text        string `json:"text"`
}

// CreateReview handles POST /reviews
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	var input reviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondOutcome(c, outcome.BadParams)
		return
	}

	date, ok := parseDate(input.Date)
	if !ok {
		respondOutcome(c, outcome.BadParams)
		return
	}

	respondOutcome(c, ctrl.reviewService.AddReview(
		input.CustomerID, input.ApartmentID, date, input.Rating, input.Text,
	))
}

// UpdateReview handles PUT /reviews
func (ctrl *ReviewController) UpdateReview(c *gin.Context) {
	var input reviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondOutcome(c, outcome.BadParams)
		return
	}

	date, ok := parseDate(input.Date)
	if !ok {
		respondOutcome(c, outcome.BadParams)
		return
	}

	respondOutcome(c, ctrl.reviewService.UpdateReview(
		input.CustomerID, input.ApartmentID, date, input.Rating, input.Text,
	))
}

// GetReview handles GET /reviews?customer_id=N&apartment_id=M
func (ctrl *ReviewController) GetReview(c *gin.Context) {
	customerID, err := strconv.Atoi(c.Query("customer_id"))
	if err != nil {
		respondOutcome(c, outcome.BadParams)
		return
	}
	apartmentID, err := strconv.Atoi(c.Query("apartment_id"))
	if err != nil {
		respondOutcome(c, outcome.BadParams)
		return
	}

	review := ctrl.reviewService.GetReview(customerID, apartmentID)
	if review.IsZero() {
		respondOutcome(c, outcome.NotExists)
		return
	}
	c.JSON(http.StatusOK, review)
}

// ListApartmentReviews handles GET /apartments/:id/reviews?since=YYYY-MM-DD.
// Without since every review is returned.
func (ctrl *ReviewController) ListApartmentReviews(c *gin.Context) {
	apartmentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var since time.Time
	if raw := c.Query("since"); raw != "" {
		parsed, ok := parseDate(raw)
		if !ok {
			respondOutcome(c, outcome.BadParams)
			return
		}
		since = parsed
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": ctrl.reviewService.GetApartmentReviews(apartmentID, since),
	})
}
