package model

// Owner is a party that can hold apartments. IDs are chosen by the caller,
// never generated, so the primary key does not auto-increment.
type Owner struct {
	ID   int    `gorm:"primaryKey;autoIncrement:false;check:chk_owner_id,id > 0" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

func (Owner) TableName() string {
	return "owners"
}

// IsZero reports whether o is the "no such owner" sentinel.
func (o Owner) IsZero() bool {
	return o.ID == 0
}
