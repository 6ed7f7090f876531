package models

import "time"

const (
	RoleStudent = "student"
	RoleTutor   = "tutor"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FirstName    string    `gorm:"size:100;not null" json:"first_name"`
	LastName     string    `gorm:"size:100;not null" json:"last_name"`
	Email        string    `gorm:"size:255;not null;unique" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Phone        string    `gorm:"size:20;not null" json:"phone"`
	Role         string    `gorm:"size:20;not null" json:"role"`
	DateOfBirth  time.Time `gorm:"not null" json:"date_of_birth"`

	Student *Student `gorm:"foreignKey:UserID" json:"student,omitempty"`
	Tutor   *Tutor   `gorm:"foreignKey:UserID" json:"tutor,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
