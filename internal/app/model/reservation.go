package model

import "time"

// Reservation is a stay booked by a customer. Intervals are half-open
// [StartDate, EndDate): two reservations for the same apartment may touch
// end-to-start but never overlap. The no-overlap rule is enforced by a
// guarded insert in the repository, not by a declarative constraint.
type Reservation struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	CustomerID  int       `gorm:"not null;index;check:chk_reservation_customer,customer_id > 0" json:"customer_id"`
	ApartmentID int       `gorm:"not null;index;check:chk_reservation_apartment,apartment_id > 0" json:"apartment_id"`
	StartDate   time.Time `gorm:"not null;type:date" json:"start_date"`
	EndDate     time.Time `gorm:"not null;type:date;check:chk_reservation_dates,start_date <= end_date" json:"end_date"`
	Price       float64   `gorm:"not null;check:chk_reservation_price,price > 0" json:"price"`

	Customer  Customer  `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
	Apartment Apartment `gorm:"foreignKey:ApartmentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Reservation) TableName() string {
	return "reservations"
}

// Nights returns the length of the stay in nights.
func (r Reservation) Nights() int {
	return int(r.EndDate.Sub(r.StartDate).Hours() / 24)
}
