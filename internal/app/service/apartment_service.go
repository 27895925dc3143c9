package service

import (
	"github.com/yonatan-reicher/staymarket-backend/internal/app/model"
	"github.com/yonatan-reicher/staymarket-backend/internal/app/repository"
	"github.com/yonatan-reicher/staymarket-backend/internal/outcome"
)

type ApartmentService struct {
	apartmentRepo *repository.ApartmentRepository
}

func NewApartmentService(apartmentRepo *repository.ApartmentRepository) *ApartmentService {
	return &ApartmentService{apartmentRepo: apartmentRepo}
}

// AddApartment registers an apartment. Both a duplicate id and a duplicate
// (address, city, country) location report ALREADY_EXISTS.
func (s *ApartmentService) AddApartment(id int, address, city, country string, size int) outcome.Outcome {
	if id <= 0 || size <= 0 || address == "" || city == "" || country == "" {
		return outcome.BadParams
	}

	err := s.apartmentRepo.Insert(&model.Apartment{
		ID:      id,
		Address: address,
		City:    city,
		Country: country,
		Size:    size,
	})
	if err != nil {
		return storageOutcome(err, outcome.AlreadyExists, outcome.BadParams)
	}
	return outcome.OK
}

// GetApartment returns the apartment, or the zero sentinel when absent.
func (s *ApartmentService) GetApartment(id int) model.Apartment {
	if id <= 0 {
		return model.Apartment{}
	}

	apartment, err := s.apartmentRepo.FindByID(id)
	if err != nil {
		return model.Apartment{}
	}
	return apartment
}

// DeleteApartment removes the apartment and, by cascade, its ownership,
// reservations and reviews.
func (s *ApartmentService) DeleteApartment(id int) outcome.Outcome {
	if id <= 0 {
		return outcome.BadParams
	}

	rows, err := s.apartmentRepo.DeleteByID(id)
	if err != nil {
		return storageOutcome(err, outcome.BadParams, outcome.BadParams)
	}
	if rows == 0 {
		return outcome.NotExists
	}
	return outcome.OK
}
