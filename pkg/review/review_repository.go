package review

import (
	"Recipe-Finder/entities"
	"context"
	"gorm.io/gorm"
)

type (
	ReviewRepository interface {
		CreateReview(ctx context.Context, review *entities.Review) error
		GetReviewsByRecipeID(ctx context.Context, recipeID string) ([]entities.ReviewWithUsername, error)
	}

	reviewRepository struct {
		db *gorm.DB
	}
)

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) CreateReview(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Omit("User").Create(review).Error
}

// GetReviewsByRecipeID returns the recipe's reviews joined with the reviewer's
// username, newest first.
func (r *reviewRepository) GetReviewsByRecipeID(ctx context.Context, recipeID string) ([]entities.ReviewWithUsername, error) {
	reviews := []entities.ReviewWithUsername{}
	if err := r.db.WithContext(ctx).
		Table("reviews").
		Select("reviews.id, reviews.user_id, reviews.recipe_id, reviews.rating, reviews.comment, reviews.created_at, users.username").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.recipe_id = ?", recipeID).
		Order("reviews.created_at desc").
		Scan(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
