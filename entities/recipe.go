// File: entities/recipe.go
package entities

import (
	"time"
)

// RecipeCache holds a provider detail payload keyed by the provider's recipe id.
type RecipeCache struct {
	RecipeID string    `gorm:"primaryKey" json:"recipe_id"`
	Data     string    `gorm:"type:text;not null" json:"data"`
	CachedAt time.Time `gorm:"type:timestamp;not null" json:"cached_at"`
}
