package model

import "time"

const (
	RoleUser  = "USER"
	RoleMod   = "MOD"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Username          string    `gorm:"size:64;not null;uniqueIndex" json:"username"`
	Email             string    `gorm:"size:128;not null;uniqueIndex" json:"email"`
	EncryptedPassword string    `gorm:"size:255;not null" json:"-"`
	Role              string    `gorm:"size:16;not null;default:USER" json:"role"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ValidRole reports whether role is one of the known role names.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleMod, RoleAdmin:
		return true
	}
	return false
}
