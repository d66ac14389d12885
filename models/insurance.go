package models

import "time"

type Insurance struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CustomerID      uint      `gorm:"index;not null" json:"customer_id"`
	Type            string    `gorm:"not null" json:"type"`
	RenewalDate     Date      `gorm:"not null" json:"renewal_date"`
	CoverageDetails string    `gorm:"type:text" json:"coverage_details"`
	PremiumAmount   *float64  `gorm:"type:decimal(10,2)" json:"premium_amount"`
	Notes           string    `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time `gorm:"<-:create" json:"created_at"`

	Customer *Customer `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// InsuranceWithRelations is the expanded projection carrying the policy's
// documents, returned by the single-insurance endpoint.
type InsuranceWithRelations struct {
	Insurance
	Documents []Document `json:"documents"`
}
