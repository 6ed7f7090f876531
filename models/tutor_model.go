package models

import "time"

type Tutor struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	UserID          uint   `gorm:"not null;unique" json:"user_id"`
	CityID          *uint  `json:"city_id"`
	YearsExperience int    `gorm:"not null;default:0" json:"years_experience"`
	Education       string `gorm:"type:text" json:"education"`
	AboutMe         string `gorm:"type:text" json:"about_me"`
	Address         string `gorm:"size:255" json:"address"`

	User     User           `gorm:"foreignKey:UserID" json:"user"`
	City     *City          `gorm:"foreignKey:CityID" json:"city,omitempty"`
	Subjects []TutorSubject `gorm:"foreignKey:TutorID" json:"subjects"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
