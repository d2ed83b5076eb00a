package recipe

import (
	"Recipe-Finder/domain"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

const (
	// PlaceholderAPIKey is the value shipped in sample env files; it counts as unset.
	PlaceholderAPIKey = "YOUR_API_KEY_HERE"
	MaxSearchResults  = 9

	providerTimeout = 30 * time.Second
)

type (
	// Provider is the recipe-search backend: Spoonacular, or the built-in
	// mock catalogue when no API key is configured.
	Provider interface {
		Search(ctx context.Context, req domain.RecipeSearchRequest) ([]domain.SearchResultItem, error)
		GetDetails(ctx context.Context, recipeID string) (json.RawMessage, error)
		IsFallback() bool
	}

	spoonacularProvider struct {
		apiKey     string
		baseURL    string
		httpClient *http.Client
	}
)

// NewProvider picks fallback mode when apiKey is empty or the placeholder.
// A nil httpClient gets a client with the default timeout.
func NewProvider(apiKey, baseURL string, httpClient *http.Client) Provider {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" || apiKey == PlaceholderAPIKey {
		return fallbackProvider{}
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: providerTimeout}
	}
	return &spoonacularProvider{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (p *spoonacularProvider) IsFallback() bool { return false }

func (p *spoonacularProvider) Search(ctx context.Context, req domain.RecipeSearchRequest) ([]domain.SearchResultItem, error) {
	params := url.Values{}
	params.Set("apiKey", p.apiKey)
	params.Set("query", req.Query)
	params.Set("diet", req.Diet)
	params.Set("cuisine", req.Cuisine)
	params.Set("type", req.Type)
	params.Set("addRecipeInformation", "true")
	params.Set("number", fmt.Sprint(MaxSearchResults))

	body, err := p.get(ctx, "/recipes/complexSearch", params)
	if err != nil {
		return nil, err
	}

	var res domain.RecipeSearchResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("%w: decode search response: %v", domain.ErrUpstream, err)
	}
	if res.Results == nil {
		res.Results = []domain.SearchResultItem{}
	}
	if len(res.Results) > MaxSearchResults {
		res.Results = res.Results[:MaxSearchResults]
	}
	return res.Results, nil
}

func (p *spoonacularProvider) GetDetails(ctx context.Context, recipeID string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("apiKey", p.apiKey)

	body, err := p.get(ctx, "/recipes/"+url.PathEscape(recipeID)+"/information", params)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: provider returned invalid JSON", domain.ErrUpstream)
	}
	return json.RawMessage(body), nil
}

func (p *spoonacularProvider) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	endpoint := p.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.Errorw("spoonacular request failed", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Errorw("spoonacular API error", "path", path, "status", resp.Status)
		return nil, fmt.Errorf("%w: spoonacular API error: %s", domain.ErrUpstream, resp.Status)
	}
	return body, nil
}
