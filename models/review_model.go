package models

import "time"

type Review struct {
	ID        uint   `gorm:"primaryKey"`
	BookingID uint   `gorm:"not null;unique"`
	Rating    int    `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
