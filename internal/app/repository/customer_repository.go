package repository

import (
	"github.com/yonatan-reicher/staymarket-backend/internal/app/model"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Insert creates a customer with a caller-chosen id.
func (r *CustomerRepository) Insert(customer *model.Customer) error {
	return r.db.Create(customer).Error
}

// FindByID returns the customer or gorm.ErrRecordNotFound.
func (r *CustomerRepository) FindByID(id int) (model.Customer, error) {
	var customer model.Customer
	err := r.db.First(&customer, "id = ?", id).Error
	return customer, err
}

// DeleteByID removes the customer, cascading to reservations and reviews.
func (r *CustomerRepository) DeleteByID(id int) (int64, error) {
	tx := r.db.Delete(&model.Customer{}, "id = ?", id)
	return tx.RowsAffected, tx.Error
}
