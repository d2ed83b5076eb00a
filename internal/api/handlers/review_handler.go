package handlers

import (
	"Recipe-Finder/domain"
	"Recipe-Finder/internal/api/presenters"
	"Recipe-Finder/pkg/review"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	ReviewHandler interface {
		GetReviews(c *fiber.Ctx) error
		AddReview(c *fiber.Ctx) error
	}

	reviewHandler struct {
		reviewService review.ReviewService
		validator     *validator.Validate
	}
)

func NewReviewHandler(reviewService review.ReviewService, validator *validator.Validate) ReviewHandler {
	return &reviewHandler{
		reviewService: reviewService,
		validator:     validator,
	}
}

func (h *reviewHandler) GetReviews(c *fiber.Ctx) error {
	recipeID := c.Params("recipeId")

	reviews, err := h.reviewService.GetReviews(c.UserContext(), recipeID)
	if err != nil {
		log.Errorw("fetch reviews failed", "recipe_id", recipeID, "error", err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReviews, nil)
	}

	return presenters.SuccessResponse(c, reviews, fiber.StatusOK, domain.MessageSuccessGetReviews)
}

func (h *reviewHandler) AddReview(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, domain.ErrUnauthorized)
	}

	req := new(domain.ReviewCreateRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddReview, err)
	}

	res, err := h.reviewService.AddReview(c.UserContext(), *req, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, err)
		case errors.Is(err, domain.ErrRecipeIDEmpty):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddReview, err)
		}
		log.Errorw("add review failed", "user_id", userID, "error", err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddReview, nil)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddReview)
}
