package handlers

import (
	"Recipe-Finder/domain"
	"Recipe-Finder/internal/api/presenters"
	"Recipe-Finder/pkg/recipe"
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	RecipeHandler interface {
		SearchRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
	}
}

func (h *recipeHandler) SearchRecipes(c *fiber.Ctx) error {
	req := domain.RecipeSearchRequest{
		Query:   c.Query("q"),
		Diet:    c.Query("diet"),
		Cuisine: c.Query("cuisine"),
		Type:    c.Query("type"),
	}

	results, err := h.recipeService.SearchRecipes(c.UserContext(), req)
	if err != nil {
		log.Errorw("recipe search failed", "query", req.Query, "error", err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, domain.ErrUpstream)
	}

	return presenters.SuccessResponse(c, domain.RecipeSearchResponse{Results: results}, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	doc, err := h.recipeService.GetRecipeDetail(c.UserContext(), recipeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeIDEmpty) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipeDetail, err)
		}
		log.Errorw("recipe detail failed", "recipe_id", recipeID, "error", err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipeDetail, domain.ErrUpstream)
	}

	return presenters.SuccessResponse(c, doc, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}
