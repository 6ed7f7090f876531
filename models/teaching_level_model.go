package models

// TeachingLevel orders itself by Position for display; creation order is unrelated.
type TeachingLevel struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Position int    `gorm:"not null;unique" json:"position"`
}
