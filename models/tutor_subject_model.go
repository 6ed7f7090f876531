package models

// TutorSubject is one (subject, level, rate) combination a tutor offers.
type TutorSubject struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	TutorID    uint    `gorm:"not null" json:"tutor_id"`
	SubjectID  uint    `gorm:"not null" json:"subject_id"`
	LevelID    uint    `gorm:"not null" json:"level_id"`
	HourlyRate float64 `gorm:"type:numeric(10,2);not null" json:"hourly_rate"`

	Tutor         Tutor         `gorm:"foreignKey:TutorID" json:"-"`
	Subject       Subject       `gorm:"foreignKey:SubjectID" json:"subject"`
	TeachingLevel TeachingLevel `gorm:"foreignKey:LevelID" json:"teaching_level"`
}
