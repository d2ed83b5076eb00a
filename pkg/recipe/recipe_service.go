package recipe

import (
	"Recipe-Finder/domain"
	"Recipe-Finder/entities"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// CacheTTL is how long a cached provider document counts as fresh.
const CacheTTL = 24 * time.Hour

type (
	RecipeService interface {
		SearchRecipes(ctx context.Context, req domain.RecipeSearchRequest) ([]domain.SearchResultItem, error)
		GetRecipeDetail(ctx context.Context, recipeID string) (json.RawMessage, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		provider         Provider
		now              func() time.Time
	}
)

func NewRecipeService(recipeRepository RecipeRepository, provider Provider) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		provider:         provider,
		now:              time.Now,
	}
}

func (s *recipeService) SearchRecipes(ctx context.Context, req domain.RecipeSearchRequest) ([]domain.SearchResultItem, error) {
	results, err := s.provider.Search(ctx, req)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []domain.SearchResultItem{}
	}
	return results, nil
}

// GetRecipeDetail serves a fresh cached document when one exists, otherwise
// fetches from the provider and refreshes the cache. Cache failures only cost
// a refetch; they never fail the request.
func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string) (json.RawMessage, error) {
	recipeID = strings.TrimSpace(recipeID)
	if recipeID == "" {
		return nil, domain.ErrRecipeIDEmpty
	}

	if doc, ok := s.cachedDocument(ctx, recipeID); ok {
		log.Debugf("Serving recipe %s from cache", recipeID)
		return doc, nil
	}

	doc, err := s.provider.GetDetails(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	cached := entities.RecipeCache{
		RecipeID: recipeID,
		Data:     string(doc),
		CachedAt: s.now().UTC(),
	}
	if err := s.recipeRepository.UpsertCachedRecipe(ctx, &cached); err != nil {
		log.Errorw("cache write error", "recipe_id", recipeID, "error", err)
	}

	return doc, nil
}

func (s *recipeService) cachedDocument(ctx context.Context, recipeID string) (json.RawMessage, bool) {
	cached, err := s.recipeRepository.GetCachedRecipe(ctx, recipeID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Errorw("cache read error", "recipe_id", recipeID, "error", err)
		}
		return nil, false
	}

	if s.now().Sub(cached.CachedAt) >= CacheTTL {
		return nil, false
	}
	if !json.Valid([]byte(cached.Data)) {
		log.Warnw("discarding corrupt cache row", "recipe_id", recipeID)
		return nil, false
	}
	return json.RawMessage(cached.Data), true
}
