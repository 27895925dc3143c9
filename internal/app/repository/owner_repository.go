package repository

import (
	"github.com/yonatan-reicher/staymarket-backend/internal/app/model"

	"gorm.io/gorm"
)

type OwnerRepository struct {
	db *gorm.DB
}

func NewOwnerRepository(db *gorm.DB) *OwnerRepository {
	return &OwnerRepository{db: db}
}

// Insert creates an owner with a caller-chosen id.
func (r *OwnerRepository) Insert(owner *model.Owner) error {
	return r.db.Create(owner).Error
}

// FindByID returns the owner or gorm.ErrRecordNotFound.
func (r *OwnerRepository) FindByID(id int) (model.Owner, error) {
	var owner model.Owner
	err := r.db.First(&owner, "id = ?", id).Error
	return owner, err
}

// DeleteByID removes the owner, cascading to ownerships. Returns the number
// of deleted rows so the caller can distinguish "gone" from "never existed".
func (r *OwnerRepository) DeleteByID(id int) (int64, error) {
	tx := r.db.Delete(&model.Owner{}, "id = ?", id)
	return tx.RowsAffected, tx.Error
}

// AssignApartment records ownership. The ownerships primary key is the
// apartment id, so an already-owned apartment surfaces as a unique violation.
func (r *OwnerRepository) AssignApartment(ownerID, apartmentID int) error {
	return r.db.Create(&model.Ownership{OwnerID: ownerID, ApartmentID: apartmentID}).Error
}

// DropApartment removes an exact ownership row.
func (r *OwnerRepository) DropApartment(ownerID, apartmentID int) (int64, error) {
	tx := r.db.Delete(&model.Ownership{}, "owner_id = ? AND apartment_id = ?", ownerID, apartmentID)
	return tx.RowsAffected, tx.Error
}

// FindApartmentOwner resolves an apartment's owner through the
// owner_apartments view.
func (r *OwnerRepository) FindApartmentOwner(apartmentID int) (model.Owner, error) {
	var row struct {
		OwnerID int
		Name    string
	}
	tx := r.db.Raw(
		"SELECT owner_id, name FROM owner_apartments WHERE apartment_id = ?",
		apartmentID,
	).Scan(&row)
	if tx.Error != nil {
		return model.Owner{}, tx.Error
	}
	if tx.RowsAffected == 0 {
		return model.Owner{}, gorm.ErrRecordNotFound
	}
	return model.Owner{ID: row.OwnerID, Name: row.Name}, nil
}

// FindOwnerApartments lists every apartment the owner holds, ordered by id.
func (r *OwnerRepository) FindOwnerApartments(ownerID int) ([]model.Apartment, error) {
	var apartments []model.Apartment
	err := r.db.Raw(`
		SELECT apartment_id AS id, address, city, country, size
		FROM owner_apartments
		WHERE owner_id = ?
		ORDER BY apartment_id`,
		ownerID,
	).Scan(&apartments).Error
	return apartments, err
}
