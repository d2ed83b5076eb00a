package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
}

// ensureID fills an empty primary key so rows get an id on every dialect,
// not only where uuid_generate_v4() is available.
func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	ensureID(&u.ID)
	return nil
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	ensureID(&r.ID)
	return nil
}
