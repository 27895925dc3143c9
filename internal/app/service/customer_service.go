package service

import (
	"github.com/yonatan-reicher/staymarket-backend/internal/app/model"
	"github.com/yonatan-reicher/staymarket-backend/internal/app/repository"
	"github.com/yonatan-reicher/staymarket-backend/internal/outcome"
)

type CustomerService struct {
	customerRepo *repository.CustomerRepository
}

func NewCustomerService(customerRepo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// AddCustomer registers a customer under a caller-chosen positive id.
func (s *CustomerService) AddCustomer(id int, name string) outcome.Outcome {
	if id <= 0 || name == "" {
		return outcome.BadParams
	}

	err := s.customerRepo.Insert(&model.Customer{ID: id, Name: name})
	if err != nil {
		return storageOutcome(err, outcome.AlreadyExists, outcome.BadParams)
	}
	return outcome.OK
}

// GetCustomer returns the customer, or the zero sentinel when absent.
func (s *CustomerService) GetCustomer(id int) model.Customer {
	if id <= 0 {
		return model.Customer{}
	}

	customer, err := s.customerRepo.FindByID(id)
	if err != nil {
		return model.Customer{}
	}
	return customer
}

// DeleteCustomer removes the customer and, by cascade, their reservations
// and reviews.
func (s *CustomerService) DeleteCustomer(id int) outcome.Outcome {
	if id <= 0 {
		return outcome.BadParams
	}

	rows, err := s.customerRepo.DeleteByID(id)
	if err != nil {
		return storageOutcome(err, outcome.BadParams, outcome.BadParams)
	}
	if rows == 0 {
		return outcome.NotExists
	}
	return outcome.OK
}
