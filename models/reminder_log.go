package models

import "time"

// RenewalReminderLog records one reminder send attempt for a policy renewal.
type RenewalReminderLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	InsuranceID  uint      `gorm:"index;not null" json:"insurance_id"`
	CustomerID   uint      `gorm:"index;not null" json:"customer_id"`
	Channel      string    `gorm:"size:20" json:"channel"` // whatsapp, sms
	Status       string    `gorm:"size:20" json:"status"`  // sent, failed
	ErrorMessage string    `gorm:"type:text" json:"error_message"`
	SentAt       time.Time `json:"sent_at"`
}
