package recipe

import (
	"Recipe-Finder/entities"
	"context"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipeRepository interface {
		GetCachedRecipe(ctx context.Context, recipeID string) (*entities.RecipeCache, error)
		UpsertCachedRecipe(ctx context.Context, cached *entities.RecipeCache) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) GetCachedRecipe(ctx context.Context, recipeID string) (*entities.RecipeCache, error) {
	var cached entities.RecipeCache
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).First(&cached).Error; err != nil {
		return nil, err
	}
	return &cached, nil
}

// UpsertCachedRecipe is a single insert-or-replace statement, so concurrent
// cold misses for the same id converge on the last write.
func (r *recipeRepository) UpsertCachedRecipe(ctx context.Context, cached *entities.RecipeCache) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "recipe_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "cached_at"}),
		}).
		Create(cached).Error
}
