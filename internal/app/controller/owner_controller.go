package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yonatan-reicher/staymarket-backend/internal/app/service"
	"github.com/yonatan-reicher/staymarket-backend/internal/outcome"
)

type OwnerController struct {
	ownerService *service.OwnerService
}

func NewOwnerController(ownerService *service.OwnerService) *OwnerController {
	return &OwnerController{ownerService: ownerService}
}

// CreateOwner handles POST /owners
func (ctrl *OwnerController) CreateOwner(c *gin.Context) {
	var input struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondOutcome(c, outcome.BadParams)
		return
	}

	respondOutcome(c, ctrl.ownerService.AddOwner(input.ID, input.Name))
}

// GetOwner handles GET /owners/:id
func (ctrl *OwnerController) GetOwner(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	owner := ctrl.ownerService.GetOwner(id)
	if owner.IsZero() {
		respondOutcome(c, outcome.NotExists)
		return
	}
	c.JSON(http.StatusOK, owner)
}

// DeleteOwner handles DELETE /owners/:id
func (ctrl *OwnerController) DeleteOwner(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	respondOutcome(c, ctrl.ownerService.DeleteOwner(id))
}

// AssignApartment handles POST /owners/:id/apartments/:apartment_id
func (ctrl *OwnerController) AssignApartment(c *gin.Context) {
	ownerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	apartmentID, ok := pathID(c, "apartment_id")
	if !ok {
		return
	}

	respondOutcome(c, ctrl.ownerService.AssignApartment(ownerID, apartmentID))
}

// DropApartment handles DELETE /owners/:id/apartments/:apartment_id
func (ctrl *OwnerController) DropApartment(c *gin.Context) {
	ownerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	apartmentID, ok := pathID(c, "apartment_id")
	if !ok {
		return
	}

	respondOutcome(c, ctrl.ownerService.DropApartment(ownerID, apartmentID))
}

// ListOwnerApartments handles GET /owners/:id/apartments
func (ctrl *OwnerController) ListOwnerApartments(c *gin.Context) {
	ownerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"apartments": ctrl.ownerService.GetOwnerApartments(ownerID),
	})
}
