package domain

import (
	"errors"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"

	MessageFailedGetRecipes      = "external API error"
	MessageFailedGetRecipeDetail = "external API error"

	ErrRecipeIDEmpty = errors.New("recipe id is required")
)

type (
	RecipeSearchRequest struct {
		Query   string
		Diet    string
		Cuisine string
		Type    string
	}

	SearchResultItem struct {
		ID             int    `json:"id"`
		Title          string `json:"title"`
		Image          string `json:"image"`
		Summary        string `json:"summary,omitempty"`
		ReadyInMinutes int    `json:"readyInMinutes"`
		Servings       int    `json:"servings"`
	}

	RecipeSearchResponse struct {
		Results []SearchResultItem `json:"results"`
	}

	// RecipeDetail is the subset of the provider's detail document the mock
	// catalogue and the client care about. The server itself passes provider
	// documents through untouched as json.RawMessage.
	RecipeDetail struct {
		ID                   any                   `json:"id"`
		Title                string                `json:"title"`
		Image                string                `json:"image,omitempty"`
		Summary              string                `json:"summary,omitempty"`
		ReadyInMinutes       int                   `json:"readyInMinutes,omitempty"`
		Servings             int                   `json:"servings,omitempty"`
		ExtendedIngredients  []Ingredient          `json:"extendedIngredients"`
		AnalyzedInstructions []AnalyzedInstruction `json:"analyzedInstructions"`
	}

	Ingredient struct {
		Original string `json:"original"`
	}

	AnalyzedInstruction struct {
		Steps []InstructionStep `json:"steps"`
	}

	InstructionStep struct {
		Step string `json:"step"`
	}
)
