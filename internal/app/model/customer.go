package model

// Customer is a party that reserves and reviews apartments.
type Customer struct {
	ID   int    `gorm:"primaryKey;autoIncrement:false;check:chk_customer_id,id > 0" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

func (Customer) TableName() string {
	return "customers"
}

// IsZero reports whether c is the "no such customer" sentinel.
func (c Customer) IsZero() bool {
	return c.ID == 0
}
