package models

import "time"

type Student struct {
	ID          uint  `gorm:"primaryKey" json:"id"`
	UserID      uint  `gorm:"not null;unique" json:"user_id"`
	CityID      *uint `json:"city_id"`
	SchoolGrade int   `gorm:"not null" json:"school_grade"`

	User User  `gorm:"foreignKey:UserID" json:"user"`
	City *City `gorm:"foreignKey:CityID" json:"city,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
