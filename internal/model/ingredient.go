package model

type Ingredient struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:64;uniqueIndex;not null" json:"name"`
	CategoryID uint   `gorm:"not null;index" json:"category_id"`
}
