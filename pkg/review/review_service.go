package review

import (
	"Recipe-Finder/domain"
	"Recipe-Finder/entities"
	"context"
	"fmt"
	"github.com/google/uuid"
	"strings"
	"time"
)

type (
	ReviewService interface {
		AddReview(ctx context.Context, req domain.ReviewCreateRequest, userID string) (domain.ReviewResponse, error)
		GetReviews(ctx context.Context, recipeID string) ([]domain.ReviewResponse, error)
	}

	reviewService struct {
		reviewRepository ReviewRepository
		now              func() time.Time
	}
)

func NewReviewService(reviewRepository ReviewRepository) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		now:              time.Now,
	}
}

func (s *reviewService) AddReview(ctx context.Context, req domain.ReviewCreateRequest, userID string) (domain.ReviewResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ReviewResponse{}, domain.ErrUnauthorized
	}

	recipeID := strings.TrimSpace(string(req.RecipeID))
	if recipeID == "" {
		return domain.ReviewResponse{}, domain.ErrRecipeIDEmpty
	}

	review := entities.Review{
		UserID:    userUUID,
		RecipeID:  recipeID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: s.now().UTC(),
	}
	if err := s.reviewRepository.CreateReview(ctx, &review); err != nil {
		return domain.ReviewResponse{}, fmt.Errorf("create review: %w", err)
	}

	return domain.ReviewResponse{
		ID:        review.ID.String(),
		UserID:    review.UserID.String(),
		RecipeID:  review.RecipeID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}, nil
}

func (s *reviewService) GetReviews(ctx context.Context, recipeID string) ([]domain.ReviewResponse, error) {
	rows, err := s.reviewRepository.GetReviewsByRecipeID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	reviews := make([]domain.ReviewResponse, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, domain.ReviewResponse{
			ID:        row.ID.String(),
			UserID:    row.UserID.String(),
			RecipeID:  row.RecipeID,
			Rating:    row.Rating,
			Comment:   row.Comment,
			CreatedAt: row.CreatedAt,
			Username:  row.Username,
		})
	}
	return reviews, nil
}
