package model

import "time"

// Review is a customer's one review of an apartment, allowed only after a
// completed stay. The composite primary key gives the at-most-one-review
// rule for free; later edits go through the update operation, which may
// never move the review date backwards.
type Review struct {
	CustomerID  int       `gorm:"primaryKey;autoIncrement:false;check:chk_review_customer,customer_id > 0" json:"customer_id"`
	ApartmentID int       `gorm:"primaryKey;autoIncrement:false;check:chk_review_apartment,apartment_id > 0" json:"apartment_id"`
	Date        time.Time `gorm:"not null;type:date" json:"date"`
	Rating      int       `gorm:"not null;check:chk_review_rating,rating >= 1 AND rating <= 10" json:"rating"`
	Text        string    `gorm:"type:text;not null" json:"text"`

	Customer  Customer  `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
	Apartment Apartment `gorm:"foreignKey:ApartmentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}

// IsZero reports whether r is the "no such review" sentinel.
func (r Review) IsZero() bool {
	return r.CustomerID == 0
}
