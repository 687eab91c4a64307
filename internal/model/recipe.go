package model

import "time"

type Recipe struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Steps     string    `gorm:"type:text;not null" json:"steps"`
	PrepTime  string    `gorm:"size:32" json:"prep_time"`
	Photo     string    `gorm:"size:512" json:"photo,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecipeIngredient is an explicit join row between recipes and
// ingredients; associations are loaded by query, not by gorm relations.
type RecipeIngredient struct {
	RecipeID     uint `gorm:"primaryKey;autoIncrement:false"`
	IngredientID uint `gorm:"primaryKey;autoIncrement:false"`
}
