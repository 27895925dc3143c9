package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yonatan-reicher/staymarket-backend/internal/app/service"
	"github.com/yonatan-reicher/staymarket-backend/internal/outcome"
)

type CustomerController struct {
	customerService *service.CustomerService
}

func NewCustomerController(customerService *service.CustomerService) *CustomerController {
	return &CustomerController{customerService: customerService}
}

// CreateCustomer handles POST /customers
func (ctrl *CustomerController) CreateCustomer(c *gin.Context) {
	var input struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondOutcome(c, outcome.BadParams)
		return
	}

	respondOutcome(c, ctrl.customerService.AddCustomer(input.ID, input.Name))
}

// GetCustomer handles GET /customers/:id
func (ctrl *CustomerController) GetCustomer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	customer := ctrl.customerService.GetCustomer(id)
	if customer.IsZero() {
		respondOutcome(c, outcome.NotExists)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer handles DELETE /customers/:id
func (ctrl *CustomerController) DeleteCustomer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	respondOutcome(c, ctrl.customerService.DeleteCustomer(id))
}
