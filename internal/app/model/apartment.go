package model

// Apartment is a rentable unit. Besides the caller-chosen id, the full
// street location must be globally unique.
type Apartment struct {
	ID      int    `gorm:"primaryKey;autoIncrement:false;check:chk_apartment_id,id > 0" json:"id"`
	Address string `gorm:"not null;uniqueIndex:idx_apartment_location" json:"address"`
	City    string `gorm:"not null;uniqueIndex:idx_apartment_location" json:"city"`
	Country string `gorm:"not null;uniqueIndex:idx_apartment_location" json:"country"`
	Size    int    `gorm:"not null;check:chk_apartment_size,size > 0" json:"size"`
}

func (Apartment) TableName() string {
	return "apartments"
}

// IsZero reports whether a is the "no such apartment" sentinel.
func (a Apartment) IsZero() bool {
	return a.ID == 0
}
