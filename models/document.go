package models

import "time"

// Document is a leaf entity: created once, never updated. Its FilePath is an
// opaque handle into the blob store.
type Document struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CustomerID  uint      `gorm:"index;not null" json:"customer_id"`
	InsuranceID *uint     `gorm:"index" json:"insurance_id"`
	Filename    string    `gorm:"size:255;not null" json:"filename"`
	FilePath    string    `gorm:"size:512;not null" json:"file_path"`
	CreatedAt   time.Time `gorm:"<-:create" json:"created_at"`

	Customer  *Customer  `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Insurance *Insurance `gorm:"foreignKey:InsuranceID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
