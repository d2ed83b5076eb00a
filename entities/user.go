package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Preferences  string    `gorm:"type:text" json:"preferences"` // JSON document
	CookingSkill string    `gorm:"default:intermediate" json:"cooking_skill"`

	Timestamp
}
