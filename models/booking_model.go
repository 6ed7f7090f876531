package models

import "time"

const (
	BookingFormatOnline   = "online"
	BookingFormatInPerson = "in_person"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

type Booking struct {
	ID             uint   `gorm:"primaryKey"`
	StudentID      uint   `gorm:"not null"`
	TutorSubjectID uint   `gorm:"not null"`
	ScheduleID     uint   `gorm:"not null"`
	Format         string `gorm:"size:20;not null"`
	Status         string `gorm:"size:20;not null;default:'pending'"`

	Student      Student      `gorm:"foreignKey:StudentID"`
	TutorSubject TutorSubject `gorm:"foreignKey:TutorSubjectID"`
	Schedule     Schedule     `gorm:"foreignKey:ScheduleID"`
	Payment      *Payment     `gorm:"foreignKey:BookingID"`
	Review       *Review      `gorm:"foreignKey:BookingID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
