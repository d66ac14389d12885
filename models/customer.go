package models

import "time"

type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `gorm:"type:text" json:"address"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `gorm:"<-:create" json:"created_at"`
}

// CustomerWithRelations is the expanded projection returned by the
// single-customer endpoint. List endpoints return the flat Customer.
type CustomerWithRelations struct {
	Customer
	Insurances []Insurance `json:"insurances"`
	Documents  []Document  `json:"documents"`
}
