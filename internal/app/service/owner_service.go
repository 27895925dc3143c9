package service

import (
	"github.com/yonatan-reicher/staymarket-backend/internal/app/model"
	"github.com/yonatan-reicher/staymarket-backend/internal/app/repository"
	"github.com/yonatan-reicher/staymarket-backend/internal/outcome"
	"github.com/yonatan-reicher/staymarket-backend/pkg/logger"
)

type OwnerService struct {
	ownerRepo *repository.OwnerRepository
}

func NewOwnerService(ownerRepo *repository.OwnerRepository) *OwnerService {
	return &OwnerService{ownerRepo: ownerRepo}
}

// AddOwner registers an owner under a caller-chosen positive id.
func (s *OwnerService) AddOwner(id int, name string) outcome.Outcome {
	if id <= 0 || name == "" {
		return outcome.BadParams
	}

	err := s.ownerRepo.Insert(&model.Owner{ID: id, Name: name})
	if err != nil {
		return storageOutcome(err, outcome.AlreadyExists, outcome.BadParams)
	}
	return outcome.OK
}

// GetOwner returns the owner, or the zero sentinel when absent.
func (s *OwnerService) GetOwner(id int) model.Owner {
	if id <= 0 {
		return model.Owner{}
	}

	owner, err := s.ownerRepo.FindByID(id)
	if err != nil {
		return model.Owner{}
	}
	return owner
}

// DeleteOwner removes the owner and, by cascade, their ownership rows.
func (s *OwnerService) DeleteOwner(id int) outcome.Outcome {
	if id <= 0 {
		return outcome.BadParams
	}

	rows, err := s.ownerRepo.DeleteByID(id)
	if err != nil {
		return storageOutcome(err, outcome.BadParams, outcome.BadParams)
	}
	if rows == 0 {
		return outcome.NotExists
	}
	return outcome.OK
}

// AssignApartment makes the owner hold the apartment. An apartment already
// held by anyone reports ALREADY_EXISTS; a missing owner or apartment
// reports NOT_EXISTS.
func (s *OwnerService) AssignApartment(ownerID, apartmentID int) outcome.Outcome {
	if ownerID <= 0 || apartmentID <= 0 {
		return outcome.BadParams
	}

	err := s.ownerRepo.AssignApartment(ownerID, apartmentID)
	if err != nil {
		return storageOutcome(err, outcome.AlreadyExists, outcome.NotExists)
	}
	return outcome.OK
}

// DropApartment removes the exact (owner, apartment) ownership row.
func (s *OwnerService) DropApartment(ownerID, apartmentID int) outcome.Outcome {
	if ownerID <= 0 || apartmentID <= 0 {
		return outcome.BadParams
	}

	rows, err := s.ownerRepo.DropApartment(ownerID, apartmentID)
	if err != nil {
		return storageOutcome(err, outcome.NotExists, outcome.NotExists)
	}
	if rows == 0 {
		return outcome.NotExists
	}
	return outcome.OK
}

// GetApartmentOwner resolves who holds an apartment, sentinel when nobody.
func (s *OwnerService) GetApartmentOwner(apartmentID int) model.Owner {
	if apartmentID <= 0 {
		return model.Owner{}
	}

	owner, err := s.ownerRepo.FindApartmentOwner(apartmentID)
	if err != nil {
		return model.Owner{}
	}
	return owner
}

// GetOwnerApartments lists everything the owner holds; empty when nothing.
func (s *OwnerService) GetOwnerApartments(ownerID int) []model.Apartment {
	if ownerID <= 0 {
		return []model.Apartment{}
	}

	apartments, err := s.ownerRepo.FindOwnerApartments(ownerID)
	if err != nil {
		logger.Error("Failed to list owner apartments", err, map[string]interface{}{
			"owner_id": ownerID,
		})
		return []model.Apartment{}
	}
	return apartments
}
