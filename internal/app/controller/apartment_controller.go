package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yonatan-reicher/staymarket-backend/internal/app/service"
	"github.com/yonatan-reicher/staymarket-backend/internal/outcome"
)

type ApartmentController struct {
	apartmentService *service.ApartmentService
	ownerService     *service.OwnerService
}

func NewApartmentController(apartmentService *service.ApartmentService, ownerService *service.OwnerService) *ApartmentController {
	return &ApartmentController{
		apartmentService: apartmentService,
		ownerService:     ownerService,
	}
}

// CreateApartment handles POST /apartments
func (ctrl *ApartmentController) CreateApartment(c *gin.Context) {
	var input struct {
		ID      int    `json:"id"`
		Address string `json:"address"`
		City    string `json:"city"`
		Country string `json:"country"`
		Size    int    `json:"size"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondOutcome(c, outcome.BadParams)
		return
	}

	respondOutcome(c, ctrl.apartmentService.AddApartment(
		input.ID, input.Address, input.City, input.Country, input.Size,
	))
}

// GetApartment handles GET /apartments/:id
func (ctrl *ApartmentController) GetApartment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	apartment := ctrl.apartmentService.GetApartment(id)
	if apartment.IsZero() {
		respondOutcome(c, outcome.NotExists)
		return
	}
	c.JSON(http.StatusOK, apartment)
}

// DeleteApartment handles DELETE /apartments/:id
func (ctrl *ApartmentController) DeleteApartment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	respondOutcome(c, ctrl.apartmentService.DeleteApartment(id))
}

// GetApartmentOwner handles GET /apartments/:id/owner
func (ctrl *ApartmentController) GetApartmentOwner(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	owner := ctrl.ownerService.GetApartmentOwner(id)
	if owner.IsZero() {
		respondOutcome(c, outcome.NotExists)
		return
	}
	c.JSON(http.StatusOK, owner)
}
