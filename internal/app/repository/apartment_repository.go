package repository

import (
	"github.com/yonatan-reicher/staymarket-backend/internal/app/model"

	"gorm.io/gorm"
)

type ApartmentRepository struct {
	db *gorm.DB
}

func NewApartmentRepository(db *gorm.DB) *ApartmentRepository {
	return &ApartmentRepository{db: db}
}

// Insert creates an apartment. Both the id and the (address, city, country)
// triple are unique, and either conflict surfaces as a unique violation.
func (r *ApartmentRepository) Insert(apartment *model.Apartment) error {
	return r.db.Create(apartment).Error
}

// FindByID returns the apartment or gorm.ErrRecordNotFound.
func (r *ApartmentRepository) FindByID(id int) (model.Apartment, error) {
	var apartment model.Apartment
	err := r.db.First(&apartment, "id = ?", id).Error
	return apartment, err
}

// DeleteByID removes the apartment, cascading to ownership, reservations
// and reviews.
func (r *ApartmentRepository) DeleteByID(id int) (int64, error) {
	tx := r.db.Delete(&model.Apartment{}, "id = ?", id)
	return tx.RowsAffected, tx.Error
}
