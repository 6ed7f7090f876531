package models

import "time"

// Schedule is a single bookable slot in a tutor's calendar.
type Schedule struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TutorID   uint      `gorm:"not null" json:"tutor_id"`
	Date      time.Time `gorm:"not null" json:"date"`
	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	Tutor Tutor `gorm:"foreignKey:TutorID" json:"-"`
}
