package service

import (
	"time"

	"github.com/yonatan-reicher/staymarket-backend/internal/app/model"
	"github.com/yonatan-reicher/staymarket-backend/internal/app/repository"
	"github.com/yonatan-reicher/staymarket-backend/internal/outcome"
	"github.com/yonatan-reicher/staymarket-backend/pkg/logger"
)

type ReservationService struct {
	reservationRepo *repository.ReservationRepository
}

func NewReservationService(reservationRepo *repository.ReservationRepository) *ReservationService {
	return &ReservationService{reservationRepo: reservationRepo}
}

// MakeReservation books a stay. An interval overlapping an existing
// reservation for the apartment reports BAD_PARAMS; a missing customer or
// apartment reports NOT_EXISTS. Back-to-back stays, where one ends the day
// the next begins, are allowed.
func (s *ReservationService) MakeReservation(customerID, apartmentID int, startDate, endDate time.Time, price float64) outcome.Outcome {
	if customerID <= 0 || apartmentID <= 0 || price <= 0 {
		return outcome.BadParams
	}
	if startDate.IsZero() || endDate.IsZero() || endDate.Before(startDate) {
		return outcome.BadParams
	}

	rows, err := s.reservationRepo.InsertIfAvailable(&model.Reservation{
		CustomerID:  customerID,
		ApartmentID: apartmentID,
		StartDate:   startDate,
		EndDate:     endDate,
		Price:       price,
	})
	if err != nil {
		return storageOutcome(err, outcome.BadParams, outcome.NotExists)
	}
	if rows == 0 {
		// the availability guard blocked the insert
		return outcome.BadParams
	}
	return outcome.OK
}

// CancelReservation deletes the reservation identified by customer,
// apartment and start date; no such reservation reports NOT_EXISTS.
func (s *ReservationService) CancelReservation(customerID, apartmentID int, startDate time.Time) outcome.Outcome {
	if customerID <= 0 || apartmentID <= 0 || startDate.IsZero() {
		return outcome.BadParams
	}

	rows, err := s.reservationRepo.DeleteByKey(customerID, apartmentID, startDate)
	if err != nil {
		return storageOutcome(err, outcome.BadParams, outcome.NotExists)
	}
	if rows == 0 {
		return outcome.NotExists
	}
	return outcome.OK
}

// GetApartmentReservations lists an apartment's reservations ordered by
// start date; empty when there are none.
func (s *ReservationService) GetApartmentReservations(apartmentID int) []model.Reservation {
	if apartmentID <= 0 {
		return []model.Reservation{}
	}

	reservations, err := s.reservationRepo.FindByApartment(apartmentID)
	if err != nil {
		logger.Error("Failed to list apartment reservations", err, map[string]interface{}{
			"apartment_id": apartmentID,
		})
		return []model.Reservation{}
	}
	return reservations
}
