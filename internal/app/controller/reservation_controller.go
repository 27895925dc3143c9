package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yonatan-reicher/staymarket-backend/internal/app/service"
	"github.com/yonatan-reicher/staymarket-backend/internal/outcome"
)

type ReservationController struct {
	reservationService *service.ReservationService
}

func NewReservationController(reservationService *service.ReservationService) *ReservationController {
	return &ReservationController{reservationService: reservationService}
}

// CreateReservation handles POST /reservations
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var input struct {
		CustomerID  int     `json:"customer_id"`
		ApartmentID int     `json:"apartment_id"`
		StartDate   string  `json:"start_date"`
		EndDate     string  `json:"end_date"`
		Price       float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondOutcome(c, outcome.BadParams)
		return
	}

	startDate, ok := parseDate(input.StartDate)
	if !ok {
		respondOutcome(c, outcome.BadParams)
		return
	}
	endDate, ok := parseDate(input.EndDate)
	if !ok {
		respondOutcome(c, outcome.BadParams)
		return
	}

	respondOutcome(c, ctrl.reservationService.MakeReservation(
		input.CustomerID, input.ApartmentID, startDate, endDate, input.Price,
	))
}

// CancelReservation handles DELETE /reservations
func (ctrl *ReservationController) CancelReservation(c *gin.Context) {
	var input struct {
		CustomerID  int    `json:"customer_id"`
		ApartmentID int    `json:"apartment_id"`
		StartDate   string `json:"start_date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondOutcome(c, outcome.BadParams)
		return
	}

	startDate, ok := parseDate(input.StartDate)
	if !ok {
		respondOutcome(c, outcome.BadParams)
		return
	}

	respondOutcome(c, ctrl.reservationService.CancelReservation(
		input.CustomerID, input.ApartmentID, startDate,
	))
}

// ListApartmentReservations handles GET /apartments/:id/reservations
func (ctrl *ReservationController) ListApartmentReservations(c *gin.Context) {
	apartmentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reservations": ctrl.reservationService.GetApartmentReservations(apartmentID),
	})
}
