package model

// Ownership links an apartment to its owner. The apartment id is the primary
// key, so an apartment has at most one owner at any time. Deleting either
// endpoint cascades here.
type Ownership struct {
	ApartmentID int `gorm:"primaryKey;autoIncrement:false;check:chk_ownership_apartment,apartment_id > 0" json:"apartment_id"`
	OwnerID     int `gorm:"not null;index;check:chk_ownership_owner,owner_id > 0" json:"owner_id"`

	Apartment Apartment `gorm:"foreignKey:ApartmentID;constraint:OnDelete:CASCADE" json:"-"`
	Owner     Owner     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Ownership) TableName() string {
	return "ownerships"
}
