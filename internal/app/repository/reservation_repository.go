package repository

import (
	"time"

	"github.com/yonatan-reicher/staymarket-backend/internal/app/model"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// InsertIfAvailable books the stay unless another reservation for the same
// apartment overlaps it. Guard and insert are a single statement, so two
// concurrent bookings cannot both pass the check under snapshot isolation.
// Intervals are half-open: an existing reservation ending on the new start
// date does not block the insert. Returns the number of inserted rows;
// zero means the interval was taken.
func (r *ReservationRepository) InsertIfAvailable(res *model.Reservation) (int64, error) {
	tx := r.db.Exec(`
		INSERT INTO reservations (customer_id, apartment_id, start_date, end_date, price)
		SELECT ?, ?, ?, ?, ?
		WHERE NOT EXISTS (
			SELECT 1 FROM reservations
			WHERE apartment_id = ?
			AND start_date < ?
			AND ? < end_date
		)`,
		res.CustomerID, res.ApartmentID, res.StartDate, res.EndDate, res.Price,
		res.ApartmentID, res.EndDate, res.StartDate,
	)
	return tx.RowsAffected, tx.Error
}

// DeleteByKey cancels the reservation identified by customer, apartment and
// start date.
func (r *ReservationRepository) DeleteByKey(customerID, apartmentID int, startDate time.Time) (int64, error) {
	tx := r.db.Delete(&model.Reservation{},
		"customer_id = ? AND apartment_id = ? AND start_date = ?",
		customerID, apartmentID, startDate,
	)
	return tx.RowsAffected, tx.Error
}

// FindByApartment lists an apartment's reservations ordered by start date.
func (r *ReservationRepository) FindByApartment(apartmentID int) ([]model.Reservation, error) {
	var reservations []model.Reservation
	err := r.db.
		Where("apartment_id = ?", apartmentID).
		Order("start_date").
		Find(&reservations).Error
	return reservations, err
}
