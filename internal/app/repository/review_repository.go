package repository

import (
	"time"

	"github.com/yonatan-reicher/staymarket-backend/internal/app/model"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// InsertIfStayed creates the review only if the customer has a reservation
// on that apartment that ended on or before the review date. Zero rows means
// no qualifying stay; a duplicate review trips the composite primary key
// instead, which the caller sees as a unique violation.
func (r *ReviewRepository) InsertIfStayed(review *model.Review) (int64, error) {
	tx := r.db.Exec(`
		INSERT INTO reviews (customer_id, apartment_id, date, rating, text)
		SELECT ?, ?, ?, ?, ?
		WHERE EXISTS (
			SELECT 1 FROM reservations
			WHERE customer_id = ?
			AND apartment_id = ?
			AND end_date <= ?
		)`,
		review.CustomerID, review.ApartmentID, review.Date, review.Rating, review.Text,
		review.CustomerID, review.ApartmentID, review.Date,
	)
	return tx.RowsAffected, tx.Error
}

// UpdateIfNotBackdated rewrites the review in place, refusing to move its
// date earlier than the current one. Zero rows covers both a missing review
// and a backdated update.
func (r *ReviewRepository) UpdateIfNotBackdated(review *model.Review) (int64, error) {
	tx := r.db.Exec(`
		UPDATE reviews
		SET date = ?, rating = ?, text = ?
		WHERE customer_id = ?
		AND apartment_id = ?
		AND date <= ?`,
		review.Date, review.Rating, review.Text,
		review.CustomerID, review.ApartmentID, review.Date,
	)
	return tx.RowsAffected, tx.Error
}

// FindByKey returns one customer's review of one apartment.
func (r *ReviewRepository) FindByKey(customerID, apartmentID int) (model.Review, error) {
	var review model.Review
	err := r.db.First(&review, "customer_id = ? AND apartment_id = ?", customerID, apartmentID).Error
	return review, err
}

// FindByApartmentSince lists an apartment's reviews from a date onward,
// newest first.
func (r *ReviewRepository) FindByApartmentSince(apartmentID int, since time.Time) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.
		Where("apartment_id = ? AND date >= ?", apartmentID, since).
		Order("date DESC").
		Find(&reviews).Error
	return reviews, err
}
