package recipe

import (
	"Recipe-Finder/domain"
	"Recipe-Finder/entities"
	"Recipe-Finder/internal/testutil"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProvider struct {
	detailCalls int
	searchCalls int
	detailErr   error
	searchErr   error
}

func (p *countingProvider) IsFallback() bool { return false }

func (p *countingProvider) Search(_ context.Context, _ domain.RecipeSearchRequest) ([]domain.SearchResultItem, error) {
	p.searchCalls++
	if p.searchErr != nil {
		return nil, p.searchErr
	}
	return nil, nil
}

func (p *countingProvider) GetDetails(_ context.Context, recipeID string) (json.RawMessage, error) {
	p.detailCalls++
	if p.detailErr != nil {
		return nil, p.detailErr
	}
	return json.RawMessage(fmt.Sprintf(`{"id":%q,"call":%d}`, recipeID, p.detailCalls)), nil
}

type brokenCache struct {
	getErr    error
	upsertErr error
	upserts   int
}

func (c *brokenCache) GetCachedRecipe(context.Context, string) (*entities.RecipeCache, error) {
	return nil, c.getErr
}

func (c *brokenCache) UpsertCachedRecipe(context.Context, *entities.RecipeCache) error {
	c.upserts++
	return c.upsertErr
}

func newServiceWithClock(repo RecipeRepository, p Provider, now *time.Time) *recipeService {
	s := NewRecipeService(repo, p).(*recipeService)
	s.now = func() time.Time { return *now }
	return s
}

func TestGetRecipeDetail_CachedWithin24h(t *testing.T) {
	db := testutil.NewDB(t)
	p := &countingProvider{}
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	s := newServiceWithClock(NewRecipeRepository(db), p, &now)
	ctx := context.Background()

	first, err := s.GetRecipeDetail(ctx, "42")
	require.NoError(t, err)

	now = now.Add(23 * time.Hour)
	second, err := s.GetRecipeDetail(ctx, "42")
	require.NoError(t, err)

	assert.Equal(t, 1, p.detailCalls)
	assert.JSONEq(t, string(first), string(second))
}

func TestGetRecipeDetail_RefetchesAfter24h(t *testing.T) {
	db := testutil.NewDB(t)
	p := &countingProvider{}
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	s := newServiceWithClock(NewRecipeRepository(db), p, &now)
	ctx := context.Background()

	_, err := s.GetRecipeDetail(ctx, "42")
	require.NoError(t, err)

	now = now.Add(CacheTTL + time.Minute)
	doc, err := s.GetRecipeDetail(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, 2, p.detailCalls)
	assert.JSONEq(t, `{"id":"42","call":2}`, string(doc))

	// the refetch overwrote the stale row and reset its timestamp
	now = now.Add(time.Hour)
	_, err = s.GetRecipeDetail(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, 2, p.detailCalls)

	var rows int64
	require.NoError(t, db.Model(&entities.RecipeCache{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestGetRecipeDetail_CacheReadErrorIsAMiss(t *testing.T) {
	p := &countingProvider{}
	now := time.Now()
	cache := &brokenCache{getErr: errors.New("connection reset")}
	s := newServiceWithClock(cache, p, &now)

	doc, err := s.GetRecipeDetail(context.Background(), "7")
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
	assert.Equal(t, 1, p.detailCalls)
	assert.Equal(t, 1, cache.upserts)
}

func TestGetRecipeDetail_CacheWriteErrorStillReturnsDocument(t *testing.T) {
	p := &countingProvider{}
	now := time.Now()
	cache := &brokenCache{getErr: errors.New("down"), upsertErr: errors.New("disk full")}
	s := newServiceWithClock(cache, p, &now)

	doc, err := s.GetRecipeDetail(context.Background(), "7")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"7","call":1}`, string(doc))
}

func TestGetRecipeDetail_ProviderErrorSurfaces(t *testing.T) {
	db := testutil.NewDB(t)
	p := &countingProvider{detailErr: domain.ErrUpstream}
	now := time.Now()
	s := newServiceWithClock(NewRecipeRepository(db), p, &now)

	_, err := s.GetRecipeDetail(context.Background(), "9")
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestGetRecipeDetail_CorruptRowRefetched(t *testing.T) {
	db := testutil.NewDB(t)
	p := &countingProvider{}
	now := time.Now().UTC()
	require.NoError(t, db.Create(&entities.RecipeCache{RecipeID: "5", Data: "{not json", CachedAt: now}).Error)

	s := newServiceWithClock(NewRecipeRepository(db), p, &now)
	doc, err := s.GetRecipeDetail(context.Background(), "5")
	require.NoError(t, err)
	assert.Equal(t, 1, p.detailCalls)
	assert.JSONEq(t, `{"id":"5","call":1}`, string(doc))
}

func TestGetRecipeDetail_EmptyID(t *testing.T) {
	s := NewRecipeService(&brokenCache{}, &countingProvider{})

	_, err := s.GetRecipeDetail(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrRecipeIDEmpty)
}

func TestSearchRecipes_NilBecomesEmptyList(t *testing.T) {
	s := NewRecipeService(&brokenCache{}, &countingProvider{})

	items, err := s.SearchRecipes(context.Background(), domain.RecipeSearchRequest{Query: "x"})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSearchRecipes_UpstreamError(t *testing.T) {
	s := NewRecipeService(&brokenCache{}, &countingProvider{searchErr: domain.ErrUpstream})

	_, err := s.SearchRecipes(context.Background(), domain.RecipeSearchRequest{Query: "x"})
	assert.ErrorIs(t, err, domain.ErrUpstream)
}
