package models

type Subject struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Category string `gorm:"size:100;not null" json:"category"`
}
