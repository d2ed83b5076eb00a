package entities

import (
	"github.com/google/uuid"
	"time"
)

type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	RecipeID  string    `gorm:"not null;index" json:"recipe_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `gorm:"type:timestamp;index" json:"created_at"`

	User *User `gorm:"foreignKey:UserID"`
}

// ReviewWithUsername is the row shape of the reviews/users join.
type ReviewWithUsername struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	RecipeID  string
	Rating    int
	Comment   string
	CreatedAt time.Time
	Username  string
}
