package models

import "time"

const (
	PaymentStatusPending  = "pending"
	PaymentStatusSuccess  = "success"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

type Payment struct {
	ID        uint    `gorm:"primaryKey"`
	BookingID uint    `gorm:"not null;unique"`
	Amount    float64 `gorm:"type:numeric(10,2);not null"`
	Status    string  `gorm:"size:20;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
