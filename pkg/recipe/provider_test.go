package recipe

import (
	"Recipe-Finder/domain"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_FallbackSelection(t *testing.T) {
	t.Parallel()

	assert.True(t, NewProvider("", "http://unused", nil).IsFallback())
	assert.True(t, NewProvider("  ", "http://unused", nil).IsFallback())
	assert.True(t, NewProvider(PlaceholderAPIKey, "http://unused", nil).IsFallback())
	assert.False(t, NewProvider("real-key", "http://unused", nil).IsFallback())
}

func TestFallbackSearch_DeterministicAndIgnoresFilters(t *testing.T) {
	t.Parallel()

	p := NewProvider("", "", nil)
	ctx := context.Background()

	plain, err := p.Search(ctx, domain.RecipeSearchRequest{Query: "anything"})
	require.NoError(t, err)
	filtered, err := p.Search(ctx, domain.RecipeSearchRequest{Query: "x", Diet: "vegan", Cuisine: "thai", Type: "dessert"})
	require.NoError(t, err)

	require.Len(t, plain, 27)
	assert.Equal(t, plain, filtered)
	assert.Equal(t, "Pasta Carbonara (Mock)", plain[0].Title)
	assert.Equal(t, "Vegetable Lasagna (Mock)", plain[len(plain)-1].Title)
}

func TestFallbackSearch_ReturnsCopy(t *testing.T) {
	t.Parallel()

	p := NewProvider("", "", nil)
	first, err := p.Search(context.Background(), domain.RecipeSearchRequest{})
	require.NoError(t, err)
	first[0].Title = "mutated"

	second, err := p.Search(context.Background(), domain.RecipeSearchRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Pasta Carbonara (Mock)", second[0].Title)
}

func decodeDetail(t *testing.T, raw json.RawMessage) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func TestFallbackDetails(t *testing.T) {
	t.Parallel()

	p := NewProvider("", "", nil)
	ctx := context.Background()

	tests := []struct {
		id          string
		wantTitle   string
		wantID      any
		ingredients int
	}{
		{"101", "Pasta Carbonara (Mock)", float64(101), 6},
		{"117", "Paneer Tikka Masala (Mock)", float64(117), 5},
		{"110", "Mock Recipe 110", float64(110), 3},
		{"500", "Mock Recipe 500", "500", 1},
		{"abc", "Mock Recipe abc", "abc", 1},
	}
	for _, tt := range tests {
		raw, err := p.GetDetails(ctx, tt.id)
		require.NoError(t, err, tt.id)

		doc := decodeDetail(t, raw)
		assert.Equal(t, tt.wantTitle, doc["title"], tt.id)
		assert.Equal(t, tt.wantID, doc["id"], tt.id)
		assert.Len(t, doc["extendedIngredients"], tt.ingredients, tt.id)
	}
}

func TestSpoonacularSearch_ForwardsQueryAndCapsResults(t *testing.T) {
	t.Parallel()

	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/complexSearch", r.URL.Path)
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}

		results := make([]string, 0, 12)
		for i := 0; i < 12; i++ {
			results = append(results, fmt.Sprintf(`{"id":%d,"title":"R%d","image":"img","readyInMinutes":10,"servings":2}`, i, i))
		}
		fmt.Fprintf(w, `{"results":[%s],"totalResults":12}`, strings.Join(results, ","))
	}))
	t.Cleanup(srv.Close)

	p := NewProvider("key-1", srv.URL+"/", srv.Client())
	items, err := p.Search(context.Background(), domain.RecipeSearchRequest{
		Query: "spicy noodles", Diet: "vegan", Cuisine: "thai", Type: "main course",
	})
	require.NoError(t, err)

	assert.Len(t, items, MaxSearchResults)
	assert.Equal(t, "R0", items[0].Title)
	assert.Equal(t, map[string]string{
		"apiKey":               "key-1",
		"query":                "spicy noodles",
		"diet":                 "vegan",
		"cuisine":              "thai",
		"type":                 "main course",
		"addRecipeInformation": "true",
		"number":               "9",
	}, gotQuery)
}

func TestSpoonacularSearch_UpstreamFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"quota"}`, http.StatusPaymentRequired)
	}))
	t.Cleanup(srv.Close)

	p := NewProvider("key", srv.URL, srv.Client())
	_, err := p.Search(context.Background(), domain.RecipeSearchRequest{Query: "x"})
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestSpoonacularDetails(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/716429/information", r.URL.Path)
		assert.Equal(t, "key", r.URL.Query().Get("apiKey"))
		fmt.Fprint(w, `{"id":716429,"title":"Pasta with Garlic"}`)
	}))
	t.Cleanup(srv.Close)

	p := NewProvider("key", srv.URL, srv.Client())
	raw, err := p.GetDetails(context.Background(), "716429")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":716429,"title":"Pasta with Garlic"}`, string(raw))
}

func TestSpoonacularDetails_InvalidJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>oops</html>`)
	}))
	t.Cleanup(srv.Close)

	_, err := NewProvider("key", srv.URL, srv.Client()).GetDetails(context.Background(), "1")
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestSpoonacularDetails_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewProvider("key", url, nil).GetDetails(context.Background(), "1")
	assert.ErrorIs(t, err, domain.ErrUpstream)
}
